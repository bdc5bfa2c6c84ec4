// Package main is the entry point for the doccov CLI.
package main

import "doccov.dev/pkg/doccov/cmd"

func main() {
	cmd.Execute()
}
