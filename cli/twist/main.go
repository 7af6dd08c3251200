// Package main is the twist CLI command itself.
package main

import (
	"log"
	"os"

	kinmathcli "go.viam.com/kinmath/cli"
)

func main() {
	app := kinmathcli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
