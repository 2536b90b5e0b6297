package main

import "github.com/kilianc/doctree/internal/cli"

func main() {
	cli.Execute()
}
