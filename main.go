// termtoe is a terminal application to play Tic-Tac-Toe on one keyboard.
package main

import (
	"fmt"
	"os"

	"termtoe/internal/cmd"
)

func main() {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "termtoe: %s\n", err)
		os.Exit(1)
	}
}
