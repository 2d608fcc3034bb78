package main

import (
	"os"

	"github.com/kailas-cloud/studentnest/internal/transport/cli"
)

func main() {
	root := cli.NewRootCmd()
	root.SetOut(os.Stdout)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
