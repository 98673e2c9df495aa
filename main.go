// Package main is the entry point for the cornerstats CLI tool, which records
// football corner-kick set pieces and computes positioning/outcome analytics.
package main

import "github.com/tacticpad/go-corner-stats/cmd"

func main() {
	cmd.Execute()
}
