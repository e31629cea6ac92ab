package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/diksiai/cmd"
)

// version is overridden at build time.
var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "diksiai:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "diksiai",
		Usage:   "Backend for the DiksiAI Indonesian writing assistant",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the TOML configuration `FILE` (defaults to ./diksiai.toml, then $HOME/.diksiai.toml)",
				EnvVars: []string{"DIKSIAI_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			cmd.APICommand(),
			cmd.ConfigCommand(),
		},
	}
}
