package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/SystemBuilders/HouseRev/internal/config"
	"github.com/SystemBuilders/HouseRev/internal/node"
	"github.com/SystemBuilders/HouseRev/internal/routing"
	"github.com/SystemBuilders/HouseRev/internal/service"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// Flags override the matching values of the config file when set.
type serveFlags struct {
	configPath string
	ip         string
	port       string
	logLevel   string
	logFormat  string
}

var (
	flags serveFlags

	rootCmd = &cobra.Command{
		Use:   "houserev",
		Short: "An in-memory housing review catalogue",
		Long: `HouseRev stores properties, their reviews and the comments on
those reviews, and serves them over a JSON API and a small web UI.`,
		SilenceUsage: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server until interrupted",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	serveCmd.Flags().StringVar(&flags.ip, "ip", "", "IP address to listen on")
	serveCmd.Flags().StringVarP(&flags.port, "port", "p", "", "port to listen on")
	serveCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&flags.logFormat, "log-format", "", "log format (json or console)")

	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies the flag overrides.
func loadConfig(f serveFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.ip != "" {
		cfg.Server.IPAddr = f.ip
	}
	if f.port != "" {
		cfg.Server.PortAddr = f.port
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	log, err := config.NewLogger(cfg.Log, os.Stdout)
	if err != nil {
		return err
	}

	hs := service.NewHousingService(log, service.NewRepositories())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	r := routing.SetupRouting(hs, log, reg, mux.NewRouter())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return node.Start(ctx, &cfg.Server, r, cfg.Server.ShutdownTimeout, log)
}
