package main

import "github.com/katalvlaran/alnseq/cli"

func main() {
	cli.Execute() // initialize cobra commands
}
