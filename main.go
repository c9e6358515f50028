package main

import "github.com/IceTiki/cfst-builder/cmd"

func main() {
	cmd.Execute()
}
