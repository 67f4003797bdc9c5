// Package cmd holds the finsage command line.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "finsage",
	Short: "Personal finance calculations and advice",
	Long: `finsage computes savings, debt, net worth, loan and tax figures for
Indian households, and serves them with per-user profiles and generated
advice over a JSON API.

Commands:
  serve  - run the HTTP API
  calc   - run a single calculation
  token  - mint a development bearer token`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
}

// newLogger builds the JSON logger used by every command.
func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
