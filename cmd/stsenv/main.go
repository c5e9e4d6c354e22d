// Where: cmd/stsenv/main.go
// What: CLI entrypoint.
// Why: Execute stsenv commands with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/stsenv/stsenv/internal/app"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(app.Run(os.Args[1:], deps))
}
