// Command wikiqa answers free-text questions about Wikipedia articles
// using an extractive question-answering model.
package main

import (
	"fmt"
	"os"

	"github.com/veldt-labs/wikiqa-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
