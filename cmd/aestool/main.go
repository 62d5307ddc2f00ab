package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

type cli struct {
	Mode    modeFlag `required:"" help:"OP-SIZE-CHAIN, e.g. ENC-256-GCM or DEC-128-ECB."`
	Infile  string   `optional:"" help:"Input file. Defaults to stdin."`
	Outfile string   `optional:"" help:"Output file. Defaults to stdout."`
	Keyfile string   `optional:"" help:"File containing raw key bytes. Defaults to an interactive prompt."`
	Verbose bool     `help:"Print diagnostic information to stderr."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c)

	err := run(&c)
	if err != nil {
		fmt.Fprintln(os.Stderr, "aestool:", err)
		os.Exit(1)
	}
	ctx.Exit(0)
}
