// Package main is the entry point for the tracectl CLI application.
// It bridges command invocations to a remote trace analysis server.
package main

import (
	"tracectl/cli/cmd"
)

func main() {
	cmd.Execute()
}
