// Package main is the entry point for the cloudvec CLI.
package main

import (
	"os"

	"github.com/cloudvec/cloudvec/cmd/cloudvec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
