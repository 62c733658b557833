// lipres - Lipid residue extraction tool
package main

import (
	"fmt"
	"os"

	"github.com/smz-lab/lipres/cmd/lipres/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
