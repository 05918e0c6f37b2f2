// Package main is the entry point for the covquest CLI.
package main

import "covquest.dev/pkg/covquest/cmd"

func main() {
	cmd.Execute()
}
