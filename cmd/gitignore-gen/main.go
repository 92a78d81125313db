// Package main provides the entry point for the gitignore-gen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pomelyu/gitignore-generator/cmd/gitignore-gen/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "unexpected error: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
