// Command splot lays out S-parameter traces as chart geometry.
//
// Usage:
//
//	splot plot [flags] request.json
//	splot tdr [flags] request.json
//	splot units
//
// A request is a JSON document {"plots": [series...]}, where each series is
// {"name": "S11", "freq": [...], "unit": "GHz", "s": [{"re": .., "im": ..}, ...]}.
// Pass "-" to read the request from stdin.
//
// Examples:
//
//	splot plot --quantity db --unit auto s11.json
//	splot plot --format svg -o s21.svg --xlsx s21.xlsx s21.json
//	splot tdr --window kaiser --beta 9 --response step s11.json
//	splot units
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
