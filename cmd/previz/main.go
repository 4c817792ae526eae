package main

import (
	"context"
	"fmt"
	"os"

	"github.com/previz/site/site/cli"
)

func main() {
	root := cli.NewRootCommand(cli.DefaultConfig())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "previz:", err)
		os.Exit(1)
	}
}
