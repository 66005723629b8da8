package main

import "github.com/terraincognita07/aura/internal/cli"

func main() {
	cli.Execute()
}
