package main

import (
	"os"

	"github.com/tmarsh/eratos/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stderr))
}
