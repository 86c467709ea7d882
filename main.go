// Package main is the entry point for the gondola CLI.
package main

import "gondola.dev/pkg/gondola/cmd"

func main() {
	cmd.Execute()
}
