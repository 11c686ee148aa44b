package main

import (
	"os"

	"github.com/dmitrymomot/infovalid/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
