// ABOUTME: Entry point for the terra CLI
// ABOUTME: Command-line tool for product stack recommendations and quote requests

package main

import (
	"fmt"
	"os"

	"github.com/Atlas00000/terra-client/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
