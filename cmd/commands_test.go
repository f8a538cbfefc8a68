package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SystemBuilders/HouseRev/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "houserev.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9000\"\nlog:\n  level: debug\n"), 0o600))

	t.Run("file only", func(t *testing.T) {
		cfg, err := loadConfig(serveFlags{configPath: path})
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("flags win over the file", func(t *testing.T) {
		cfg, err := loadConfig(serveFlags{configPath: path, ip: "0.0.0.0", port: "8080", logFormat: config.FormatConsole})
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
		assert.Equal(t, config.FormatConsole, cfg.Log.Format)
	})

	t.Run("invalid override", func(t *testing.T) {
		_, err := loadConfig(serveFlags{logFormat: "xml"})
		assert.ErrorIs(t, err, config.ErrInvalidLogFormat)
	})
}

func TestServeCommandRegistered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("port"))
}
