// Command ts2py compiles TypeScript declaration files into Python type
// stubs.
package main

import (
	"fmt"
	"os"

	"github.com/thelicato/ts2py-go/internal/cliapp"
)

func main() {
	if err := cliapp.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
