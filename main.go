// Package main is the entry point for the sift CLI.
package main

import "sift.dev/pkg/sift/cmd"

func main() {
	cmd.Execute()
}
