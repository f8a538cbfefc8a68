package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		zerolog.New(os.Stderr).Error().Err(err).Msg("houserev")
		os.Exit(1)
	}
}
