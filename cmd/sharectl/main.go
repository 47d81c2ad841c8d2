// Command sharectl manages the share gallery from the terminal: it runs
// migrations, seeds shares from YAML, lists shares with the gallery's filter
// and prints web search URLs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
