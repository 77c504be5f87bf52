package main

import "github.com/emiliopalmerini/daybook/internal/cli"

func main() {
	cli.Execute()
}
