package main

import (
	"fmt"
	"os"

	"github.com/rapidaai/capture/cmd/capturectl/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %s\n", err.Error())
		os.Exit(1)
	}
}
