package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/0xRadioAc7iv/go-coursedb/core"
	"github.com/0xRadioAc7iv/go-coursedb/internal"
	"github.com/0xRadioAc7iv/go-coursedb/internal/logger"
	"github.com/0xRadioAc7iv/go-coursedb/internal/menu"
	"github.com/0xRadioAc7iv/go-coursedb/internal/utils"
)

func main() {
	inputs, err := utils.HandleCLIInputs(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	cfg, err := internal.LoadConfig(inputs.ConfigPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	inputs.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Configure(cfg.LoggerConfig())

	store, err := core.Open(cfg.DataFile)
	if err != nil {
		logger.Error().Err(err).Str("file", cfg.DataFile).Msg("Failed to open data file")
		os.Exit(1)
	}

	stop := utils.NotifyOnInterruptOrKill(func() {
		logger.Info().Msg("Interrupted, closing data file")
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("Error while closing the data file")
		}
		os.Exit(130)
	})
	defer stop()

	session := logger.WithField("session", uuid.NewString())
	session.Debug().Str("file", cfg.DataFile).Msg("session started")

	runErr := menu.New(store, os.Stdin, os.Stdout, session).Run()

	if err := store.Close(); err != nil {
		logger.Error().Err(err).Msg("Error while closing the data file")
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, "input error:", runErr)
		os.Exit(1)
	}
}
