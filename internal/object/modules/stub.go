package modules

import "github.com/questlang/quest/internal/object"

// stubNotImplemented is shared by every leaf module whose backing
// ecosystem concern (HTTP client/server, SQL drivers, HTML templating,
// compression, serial I/O) SPEC_FULL.md registers only far enough to
// exist: constructible and nameable via sys.builtin_module_names, but
// erroring on any real use, per SPEC_FULL.md's explicit leaf-module
// scoping decision.
func stubNotImplemented(kind string) object.BuiltinFn {
	return func(args []object.Value, scope interface{}) (object.Value, error) {
		return nil, object.Raise(object.RuntimeErr, "%s is not implemented in this build", kind)
	}
}

func stubConstructor(kind string) object.BuiltinFn {
	return func(args []object.Value, scope interface{}) (object.Value, error) {
		return object.NewStubOpaque(kind), nil
	}
}

// BuildHTTP registers an http module whose client/server construction
// succeeds (returning an opaque handle) but whose request/response
// methods are unimplemented; no pack example wires an HTTP client/server
// library deeply enough to justify a real implementation within this
// build's scope.
func BuildHTTP(reg *Registry) *object.Module {
	reg.Register("http.client", stubConstructor("HttpClient"), "http", CategorySystem, "construct an HTTP client handle (not implemented in this build)")
	reg.Register("http.server", stubConstructor("HttpServer"), "http", CategorySystem, "construct an HTTP server handle (not implemented in this build)")
	reg.Register("http.get", stubNotImplemented("http.get"), "http", CategorySystem, "not implemented in this build")
	reg.Register("http.post", stubNotImplemented("http.post"), "http", CategorySystem, "not implemented in this build")
	return moduleFromRegistry("http", "HTTP client/server (not implemented in this build)", CategorySystem, reg)
}

// BuildDB registers a db module: cursor/connection construction succeeds
// as opaque handles, query execution is unimplemented.
func BuildDB(reg *Registry) *object.Module {
	reg.Register("db.connect", stubConstructor("DbConnection"), "db", CategorySystem, "construct a database connection handle (not implemented in this build)")
	reg.Register("db.query", stubNotImplemented("db.query"), "db", CategorySystem, "not implemented in this build")
	return moduleFromRegistry("db", "database access (not implemented in this build)", CategorySystem, reg)
}

// BuildHTML registers an html module for template construction.
func BuildHTML(reg *Registry) *object.Module {
	reg.Register("html.template", stubConstructor("HtmlTemplate"), "html", CategorySystem, "construct an HTML template handle (not implemented in this build)")
	reg.Register("html.render", stubNotImplemented("html.render"), "html", CategorySystem, "not implemented in this build")
	return moduleFromRegistry("html", "HTML templating (not implemented in this build)", CategorySystem, reg)
}

// BuildCompress registers a compress module for gzip/zlib-style streams.
func BuildCompress(reg *Registry) *object.Module {
	reg.Register("compress.reader", stubConstructor("StreamReader"), "compress", CategorySystem, "construct a compressed-stream reader handle (not implemented in this build)")
	reg.Register("compress.writer", stubConstructor("StreamWriter"), "compress", CategorySystem, "construct a compressed-stream writer handle (not implemented in this build)")
	return moduleFromRegistry("compress", "stream compression (not implemented in this build)", CategorySystem, reg)
}

// BuildSerial registers a serial module for SerialPort construction.
func BuildSerial(reg *Registry) *object.Module {
	reg.Register("serial.open", stubConstructor("SerialPort"), "serial", CategorySystem, "construct a serial port handle (not implemented in this build)")
	reg.Register("serial.read", stubNotImplemented("serial.read"), "serial", CategorySystem, "not implemented in this build")
	reg.Register("serial.write", stubNotImplemented("serial.write"), "serial", CategorySystem, "not implemented in this build")
	return moduleFromRegistry("serial", "serial port I/O (not implemented in this build)", CategorySystem, reg)
}
