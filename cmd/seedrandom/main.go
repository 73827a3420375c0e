package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/Jx2f/seedrandom/internal/config"
	"github.com/Jx2f/seedrandom/internal/core"
	"github.com/Jx2f/seedrandom/pkg/logger"
)

var c *config.Config

func init() {
	f := os.Getenv("CONFIG_FILE")
	if f == "" && len(os.Args) > 1 {
		f = os.Args[1]
	}
	if f == "" {
		p, _ := json.MarshalIndent(config.DefaultConfig, "", "  ")
		logger.Warn().Msgf("CONFIG_FILE not set, here is the default config:\n%s", p)
		os.Exit(0)
	}
	var err error
	c, err = config.LoadConfig(f)
	if err != nil {
		logger.Error().Stack().Err(err).Msg("Failed to load config")
		os.Exit(1)
	}
	if !logger.SetLevel(c.LogLevel) {
		logger.Warn().Msgf("Unknown log level %q, keeping info", c.LogLevel)
	}
}

func main() {
	s := core.NewService(c)

	exited := make(chan error, 1)
	go func() {
		logger.Info().Int("jobs", len(c.Jobs)).Int("workers", c.Workers).Msg("Service is starting")
		exited <- s.Start()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-exited:
		if err != nil {
			logger.Error().Stack().Err(err).Msg("Service exited")
			os.Exit(1)
		}
	case <-sig:
		logger.Info().Msg("Signal received, stopping service")
		if err := s.Stop(); err != nil {
			logger.Error().Err(err).Msg("Service stop failed")
		}
		<-exited
	}
	if err := s.Output(); err != nil {
		logger.Error().Stack().Err(err).Msg("Failed to write results")
		os.Exit(1)
	}
}
