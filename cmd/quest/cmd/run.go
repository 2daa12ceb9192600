package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/questlang/quest/internal/errors"
	"github.com/questlang/quest/internal/eval"
	"github.com/questlang/quest/internal/lexer"
	"github.com/questlang/quest/internal/object"
	"github.com/questlang/quest/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Quest script or expression",
	Long: `Execute a Quest program from a file or inline expression.

Examples:
  # Run a script file
  quest run script.q

  # Run a script file, passing arguments through as sys.argv
  quest run script.q arg1 arg2

  # Evaluate an inline expression
  quest run -e "sys.argv.len()"

  # Run with AST dump (for debugging)
  quest run --dump-ast script.q

  # Run with execution trace
  quest run --trace script.q`,
	Args: cobra.ArbitraryArgs,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace execution (for debugging)")
}

// searchPathsFromEnv splits QUEST_INCLUDE (a PATH-style list) into module
// search directories, per spec.md §6's os.search_path exposure.
func searchPathsFromEnv() []string {
	v := os.Getenv("QUEST_INCLUDE")
	if v == "" {
		return nil
	}
	return strings.Split(v, string(os.PathListSeparator))
}

func runScript(_ *cobra.Command, args []string) error {
	var input string
	var filename string
	var scriptPath string
	var scriptArgs []string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
		scriptArgs = args
	case len(args) >= 1:
		filename = args[0]
		scriptArgs = args[1:]
		content, rerr := os.ReadFile(filename)
		if rerr != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, rerr)
		}
		input = string(content)
		if abs, aerr := filepath.Abs(filename); aerr == nil {
			scriptPath = abs
		} else {
			scriptPath = filename
		}
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	l := lexer.New(input)
	p := parser.New(l, input, filename)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		compilerErrors := errors.FromStringErrors(p.Errors(), input, filename)
		fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	searchPaths := searchPathsFromEnv()
	if filename != "<eval>" {
		searchPaths = append(searchPaths, filepath.Dir(filename))
	}

	scope := eval.New(scriptPath, scriptArgs, searchPaths)
	scope.SetTracing(trace)

	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(eval.ExitSignal); ok {
				os.Exit(sig.Code)
			}
			panic(r)
		}
	}()

	if _, evalErr := eval.Eval(program, scope); evalErr != nil {
		exc := object.AsException(evalErr)
		fmt.Fprint(os.Stderr, exc.FormatUncaught())
		os.Exit(1)
	}
	return nil
}
