// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rulegen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/rulegen/internal/history"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the rulegen CLI.
var rootCmd = &cobra.Command{
	Use:   "rulegen",
	Short: "Generate Cursor rule files from .mdx documentation",
	Long: `rulegen converts .mdx documentation into Cursor rule files. Each document
is sent to a chat-completion API with a fixed conversion prompt, and the
cleaned response is written out as a .mdc rule file.

Use convert for a single document or a documentation tree, batch for the
flat components directory with optional test mode, and history to inspect
past runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rulegen.yaml or ~/.config/rulegen/config.yaml)")

	// Shared flags on the root command, inherited by subcommands.
	rootCmd.PersistentFlags().String("provider", "openai", "chat-completion provider: openai or anthropic")
	rootCmd.PersistentFlags().String("model", "", "model identifier (default depends on provider)")
	rootCmd.PersistentFlags().Float64("temperature", 0.3, "sampling temperature for completions")
	rootCmd.PersistentFlags().String("api-key", "", "API key (overrides environment and .env lookup)")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file consulted when no API key is set elsewhere")
	rootCmd.PersistentFlags().Duration("request-interval", 0, "minimum delay between API requests (e.g. 500ms, 0 = none)")
	rootCmd.PersistentFlags().String("history-db", history.DefaultPath, "path to the run history database")
	rootCmd.PersistentFlags().Bool("no-history", false, "do not record this run in the history database")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rulegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rulegen"))
		}
	}

	viper.SetEnvPrefix("RULEGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// --- option helpers ---

// The opt helpers merge a flag with its config file counterpart. An
// explicit command-line flag wins; otherwise a value from the config
// file (or a RULEGEN_* environment variable) overrides the flag default.

func optString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}
	return v
}

func optFloat64(cmd *cobra.Command, name string) float64 {
	v, _ := cmd.Flags().GetFloat64(name)
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetFloat64(name)
	}
	return v
}

func optInt(cmd *cobra.Command, name string) int {
	v, _ := cmd.Flags().GetInt(name)
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetInt(name)
	}
	return v
}

func optDuration(cmd *cobra.Command, name string) time.Duration {
	v, _ := cmd.Flags().GetDuration(name)
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetDuration(name)
	}
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
