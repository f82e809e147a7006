package main

import (
	"os"

	"github.com/calebcase/binfloat/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
