// Command quest runs the Quest scripting language.
package main

import (
	"fmt"
	"os"

	"github.com/questlang/quest/cmd/quest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
