package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/diksiai/internal/ai"
	"github.com/diksiai/internal/api"
	"github.com/diksiai/internal/config"
	"github.com/diksiai/internal/store"
)

// APICommand returns the CLI command for starting the API server
func APICommand() *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Start the DiksiAI API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port for the API server (overrides config)",
			},
		},
		Action: runAPI,
	}
}

func runAPI(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("port") {
		cfg.Server.Port = c.Int("port")
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogging(cfg.Debug)

	db, err := store.Open(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	resolver := ai.NewResolver(cfg.AI.GroqAPIKey, cfg.AI.OpenRouterAPIKey)
	aiService := ai.NewService(resolver)

	for _, m := range resolver.ListModels() {
		log.Info().
			Str("model", m.Model).
			Str("provider", m.Provider).
			Bool("available", m.Available).
			Msg("Registered model")
	}

	server := api.NewServer(cfg, db, aiService)
	return server.Start()
}

func setupLogging(debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}
