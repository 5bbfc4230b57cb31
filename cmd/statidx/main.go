// Command statidx builds and queries static full-text search indexes.
package main

import (
	"fmt"
	"os"

	"github.com/statidx/statidx/cmd/statidx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
