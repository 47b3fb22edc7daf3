package main

import "github.com/devbush/cueline/internal/adapters/cli"

func main() {
	cli.Execute()
}
