package config

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds the node logger writing to w.
func NewLogger(lcfg LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(lcfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if lcfg.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(level), nil
}
