package modules

import (
	"bytes"
	"os/exec"

	"github.com/questlang/quest/internal/object"
)

// BuildProcess registers process.* built-ins (spawn/run, backed by
// os/exec) and returns the `process` module.
func BuildProcess(reg *Registry) *object.Module {
	reg.Register("process.run", func(args []object.Value, scope interface{}) (object.Value, error) {
		if len(args) == 0 {
			return nil, object.WrongArgc("process.run", 1, len(args))
		}
		name, ok := args[0].(*object.Str)
		if !ok {
			return nil, object.Raise(object.TypeErr, "process.run expects a Str command name")
		}
		var cmdArgs []string
		if len(args) == 2 {
			arr, ok := args[1].(*object.Array)
			if !ok {
				return nil, object.Raise(object.TypeErr, "process.run expects an Array of Str arguments")
			}
			for _, it := range arr.Items() {
				s, ok := it.(*object.Str)
				if !ok {
					return nil, object.Raise(object.TypeErr, "process.run arguments must be Str")
				}
				cmdArgs = append(cmdArgs, s.Val())
			}
		}
		cmd := exec.Command(name.Val(), cmdArgs...)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err := cmd.Run()
		code := 0
		if err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			} else {
				return nil, object.Raise(object.IOErr, "process.run: %v", err)
			}
		}
		return object.NewProcessResult(code, stdout.String(), stderr.String()), nil
	}, "process", CategoryProcess, "run a child process to completion and collect its output")

	return moduleFromRegistry("process", "child process management", CategoryProcess, reg)
}
