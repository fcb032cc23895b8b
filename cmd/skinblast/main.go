// Package main provides the skinblast CLI application.
// skinblast ingests per-sample BLAST tabular output, joins it with sample
// metadata, and reports on skin-associated bacterial communities.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
