// Command ssaupdatectl runs the SSA construction pass over a JSON-encoded
// procedure, for manual inspection and scripting.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
