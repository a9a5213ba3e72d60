package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/lettercheck/internal/config"
	"github.com/robalobadob/wordle/apps/lettercheck/internal/httpserver"
	"github.com/robalobadob/wordle/apps/lettercheck/internal/replay"
	"github.com/robalobadob/wordle/apps/lettercheck/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:          "lettercheck",
		Short:        "Wordle letter coloring and letter tracking",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			setupLogging(cfg)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON scoring API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			srv := httpserver.New(store.NewMemoryStore(), httpserver.Options{
				ClientOrigin:   cfg.ClientOrigin,
				RequestTimeout: cfg.RequestTimeout,
			})
			log.Info().Str("port", cfg.Port).Msg("starting lettercheck")
			if err := srv.Start(":" + cfg.Port); err != nil {
				log.Error().Err(err).Msg("server exited")
				return err
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "replay ANSWER GUESS...",
		Short:   "Print colors and letter sets for a list of guesses",
		Example: "  lettercheck replay CORAL VEGAN HULAS BLOAT LOYAL FOCAL CORAL",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return replay.Run(c.OutOrStdout(), args[0], args[1:])
		},
	})

	return cmd
}

// setupLogging applies LOG_LEVEL and LOG_FORMAT to the global zerolog logger.
func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
	}
	if cfg.LogFormat == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
}
