package main

import (
	"fmt"
	"os"

	"github.com/tmarsh/eratos/internal/cli"
	"github.com/tmarsh/eratos/internal/run"
	"github.com/tmarsh/eratos/internal/tui"
)

func main() {
	power := cli.SelectPower(os.Args[1:], os.Stderr)
	session := run.NewSession(power, cli.OutputPath)

	if err := tui.Start(session); err != nil {
		fmt.Println("Error running ERATOS: ", err)
		os.Exit(1)
	}
}
