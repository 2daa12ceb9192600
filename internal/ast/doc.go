// Package ast defines Quest's syntax tree. `fun`/`if`/`while`/`for` are
// end-terminated expression/statement forms; `try`/`catch`/`ensure` and
// `type`/`trait` bodies are brace-delimited.
package ast
