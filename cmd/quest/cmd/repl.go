// The interactive REPL, reached by a bare `quest` invocation with no
// subcommand or file argument. No example repo in the retrieval pack
// ships a REPL to ground this on (the teacher's CLI is run-a-file only),
// so this is a plain idiomatic bufio.Scanner read-eval-print loop reusing
// eval.New/eval.Eval exactly as runScript does, rather than a bespoke
// interactive evaluator.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/questlang/quest/internal/eval"
	"github.com/questlang/quest/internal/lexer"
	"github.com/questlang/quest/internal/object"
	"github.com/questlang/quest/internal/parser"
	"github.com/spf13/cobra"
)

const replPrompt = "quest> "

func runRepl(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return runScript(cmd, args)
	}

	fmt.Printf("Quest %s — interactive mode. Ctrl-D to exit.\n", Version)
	scope := eval.New("<repl>", args, searchPathsFromEnv())

	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(eval.ExitSignal); ok {
				os.Exit(sig.Code)
			}
			panic(r)
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(replPrompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && err != io.EOF {
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Println()
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		evalLine(line, scope)
	}
}

func evalLine(line string, scope *eval.Scope) {
	l := lexer.New(line)
	p := parser.New(l, line, "<repl>")
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return
	}

	v, err := eval.Eval(program, scope)
	if err != nil {
		exc := object.AsException(err)
		fmt.Fprintln(os.Stderr, exc.FormatUncaught())
		return
	}
	if _, isNil := v.(object.Nil); !isNil {
		fmt.Println(v.Rep())
	}
}
