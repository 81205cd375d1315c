package main

import "github.com/mcoot/matchbook-go/internal/cli"

func main() {
	cli.Execute()
}
