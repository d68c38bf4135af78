// Package main is the entry point for the nbametrics CLI tool, which
// fetches NBA player stats and reports on clutch performance.
package main

import "github.com/pable/go-nba-metrics/cmd"

func main() {
	cmd.Execute()
}
