// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxivscraper CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lyalpha/arxivscraper/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the arxivscraper CLI.
var rootCmd = &cobra.Command{
	Use:   "arxivscraper",
	Short: "Harvest arXiv metadata records via OAI-PMH",
	Long: `arxivscraper harvests bibliographic metadata from the arXiv.org OAI-PMH
export endpoint for a category and date range, optionally filtering records
by field-level substring matching, and writes the results as a table, JSON,
CSV, a YAML harvest file, or a SQLite archive.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxivscraper.yaml or ~/.config/arxivscraper/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxivscraper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxivscraper"))
		}
	}

	viper.SetEnvPrefix("ARXIVSCRAPER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
