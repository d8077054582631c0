// Package main is the entry point for the formfield CLI.
package main

import (
	"os"

	"github.com/goliatone/go-formfield/cmd/formfield/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
