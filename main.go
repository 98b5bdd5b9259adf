// main package for the gitgate command-line tool
// Package main is the entry point for the gitgate CLI.
package main

import "gitgate.dev/pkg/gitgate/cmd"

func main() {
	cmd.Execute()
}
