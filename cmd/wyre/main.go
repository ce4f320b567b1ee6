package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/wyrelang/wyre/cli"
)

// CLI represents the command-line interface
var CLI struct {
	Config   string          `help:"Configuration file path" default:"wyre.yaml"`
	Verbose  bool            `help:"Enable verbose output" short:"v"`
	Quiet    bool            `help:"Suppress output" short:"q"`
	Parse    cli.ParseCmd    `cmd:"" help:"Parse source files and print their syntax trees"`
	Tokenize cli.TokenizeCmd `cmd:"" help:"Tokenize source files and print the token stream"`
	Check    cli.CheckCmd    `cmd:"" help:"Check source files for syntax errors"`
	Init     cli.InitCmd     `cmd:"" help:"Initialize a new wyre program"`
	Version  cli.VersionCmd  `cmd:"" help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Create context with config path
	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
