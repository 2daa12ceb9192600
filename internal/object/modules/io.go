package modules

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/questlang/quest/internal/object"
)

// BuildIO registers io.* built-ins (print/println/read_line, StringIO
// construction, the three SystemStream singletons) and returns the `io`
// module.
func BuildIO(reg *Registry) *object.Module {
	stdinReader := bufio.NewReader(os.Stdin)

	reg.Register("io.print", func(args []object.Value, scope interface{}) (object.Value, error) {
		for i, a := range args {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(a.Str())
		}
		return object.NilValue, nil
	}, "io", CategoryIO, "write values to stdout without a trailing newline")

	reg.Register("io.println", func(args []object.Value, scope interface{}) (object.Value, error) {
		for i, a := range args {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(a.Str())
		}
		fmt.Println()
		return object.NilValue, nil
	}, "io", CategoryIO, "write values to stdout with a trailing newline")

	reg.Register("io.read_line", func(args []object.Value, scope interface{}) (object.Value, error) {
		line, err := stdinReader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, object.Raise(object.IOErr, "read_line: %v", err)
		}
		if err == io.EOF && line == "" {
			return object.NilValue, nil
		}
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		return object.NewStr(line), nil
	}, "io", CategoryIO, "read one line from stdin, or nil at EOF")

	reg.Register("io.string_io", func(args []object.Value, scope interface{}) (object.Value, error) {
		initial := ""
		if len(args) == 1 {
			s, ok := args[0].(*object.Str)
			if !ok {
				return nil, object.Raise(object.TypeErr, "string_io expects a Str argument")
			}
			initial = s.Val()
		}
		return object.NewStringIO([]byte(initial)), nil
	}, "io", CategoryIO, "construct an in-memory read/write buffer")

	m := moduleFromRegistry("io", "input/output", CategoryIO, reg)
	m.Members["stdin"] = object.NewSystemStream("stdin")
	m.Members["stdout"] = object.NewSystemStream("stdout")
	m.Members["stderr"] = object.NewSystemStream("stderr")
	return m
}
