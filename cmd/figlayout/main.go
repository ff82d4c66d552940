// figlayout: publication figure sizing and panel labeling
//
// Computes figure dimensions that comply with per-publisher artwork rules
// and places panel labels in the publisher's house style.
//
// Build:
//
//	go build -o figlayout ./cmd/figlayout
package main

import (
	"os"

	"github.com/piwi3910/figlayout/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
