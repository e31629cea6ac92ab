package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/diksiai/internal/ai"
	"github.com/diksiai/internal/config"
)

// ConfigCommand groups the configuration subcommands.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect and manage configuration",
		Subcommands: []*cli.Command{
			configInitCommand(),
			configValidateCommand(),
		},
	}
}

func configInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Where to write the `FILE`",
				Value:   "diksiai.toml",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.String("output")
			if err := config.InitConfig(path); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			fmt.Println("Set database.url, auth.jwt_secret, and at least one AI provider key before starting the server.")
			return nil
		},
	}
}

func configValidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check the configuration and report model availability",
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			fmt.Println("Configuration OK")
			fmt.Printf("  server  %s:%d\n", cfg.Server.Host, cfg.Server.Port)

			resolver := ai.NewResolver(cfg.AI.GroqAPIKey, cfg.AI.OpenRouterAPIKey)
			for _, m := range resolver.ListModels() {
				state := "unavailable"
				if m.Available {
					state = "available"
				}
				fmt.Printf("  model   %-28s %s via %s\n", m.Model, state, m.Provider)
			}
			return nil
		},
	}
}
