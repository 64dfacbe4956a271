// Package main provides the Fathom CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Fathom %s\n", version)
		return
	}

	fmt.Println("Fathom - feed-forward classifier training for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/mnist for a full training driver.")
}
