package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"linetemp/calculator"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "linetemp",
		Short: "Steady-state temperature of overhead line conductors.",
		Long: `linetemp solves the steady-state heat balance of overhead line conductors
(Joule heating against radiative cooling) for batches of spans, either from a
scenario file or as a websocket service.`,
		SilenceUsage: true,
	}
)

// Execute runs the CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "conf/config.ini", "path to ini configuration file")
	rootCmd.AddCommand(serveCmd, solveCmd, airCmd)
}

// loadConfig 读取配置并设置日志级别
func loadConfig() calculator.Config {
	cfg := calculator.LoadConfig(configPath)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	return cfg
}
