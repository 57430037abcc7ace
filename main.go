package main

import (
	"context"
	"fmt"
	"os"

	"mathpad/cli"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Stdout, os.Args[1:]...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mathpad:", err)
		os.Exit(1)
	}
}
