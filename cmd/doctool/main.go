// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doctool CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doctool/internal/dispatch"
	"github.com/pdiddy/doctool/internal/envfile"
	"github.com/pdiddy/doctool/internal/logging"
	"github.com/pdiddy/doctool/internal/office"
	"github.com/pdiddy/doctool/pkg/types"
)

// Build metadata, set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// log is the process logger, configured in PersistentPreRunE.
var log zerolog.Logger

// rootCmd is the base command for the doctool CLI.
var rootCmd = &cobra.Command{
	Use:   "doctool",
	Short: "Document transformation operations for PDF, DOCX, HTML, and text",
	Long: `doctool runs document transformation operations: PDF merge and split,
DOCX rendering and text extraction, HTML cleanup and conversion, text
encoding, splitting, formatting, and comparison.

Run a single operation with call, several with batch, list them with ops,
or expose them over HTTP with serve.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := envfile.Load(".env"); err != nil {
			return err
		}
		log = logging.New(logConfig(), os.Stderr)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doctool.yaml or ~/.config/doctool/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doctool")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doctool"))
		}
	}

	viper.SetEnvPrefix("DOCTOOL")
	viper.AutomaticEnv()

	defaults := types.DefaultConfig()
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)
	viper.SetDefault("office.binary", defaults.Office.Binary)
	viper.SetDefault("serve.addr", defaults.Serve.Addr)
	viper.SetDefault("serve.request_timeout", defaults.Serve.RequestTimeout)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func logConfig() types.LogConfig {
	return types.LogConfig{
		Level:  viper.GetString("log.level"),
		Format: viper.GetString("log.format"),
	}
}

func officeConfig() types.OfficeConfig {
	return types.OfficeConfig{
		Binary: viper.GetString("office.binary"),
	}
}

func serveConfig() types.ServeConfig {
	return types.ServeConfig{
		Addr:           viper.GetString("serve.addr"),
		RequestTimeout: viper.GetDuration("serve.request_timeout"),
	}
}

// newDispatcher wires a dispatcher with whatever office renderer is
// available. Operations that do not need the renderer work either way,
// so a missing LibreOffice install is a warning, not a startup failure.
func newDispatcher() *dispatch.Dispatcher {
	renderer, err := office.DetectRenderer(officeConfig().Binary)
	if err != nil {
		log.Warn().Err(err).Msg("docx conversion operations will fail")
		return dispatch.New(dispatch.Deps{})
	}
	log.Debug().Str("renderer", renderer.Name()).Msg("office renderer detected")
	return dispatch.New(dispatch.Deps{Office: renderer})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
