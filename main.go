// Package main is the entry point for the configready CLI.
package main

import "github.com/przeslijmi/configready/cmd"

func main() {
	cmd.Execute()
}
