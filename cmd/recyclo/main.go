// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recyclo CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recyclo/internal/secrets"
	"github.com/pdiddy/recyclo/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the recyclo CLI.
var rootCmd = &cobra.Command{
	Use:   "recyclo",
	Short: "Recyclability consensus engine",
	Long: `recyclo combines an image classifier's material prediction with
locality-specific recycling guidelines and user-supplied item attributes
into one disposal decision.

Run the HTTP API with "serve", classify a single image with "classify",
inspect the guideline ruleset with "rules", and review logged outcomes
with "progress".`,
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./recyclo.yaml or ~/.config/recyclo/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recyclo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recyclo"))
		}
	}

	viper.SetEnvPrefix("RECYCLO")
	viper.AutomaticEnv()

	viper.SetDefault("classifier.timeout", 30*time.Second)
	viper.SetDefault("classifier.user_agent", "recyclo/0.1")
	viper.SetDefault("classifier.endpoint", "http://localhost:9090/classify")
	viper.SetDefault("policy.min_confidence", 0.70)
	viper.SetDefault("progress.db_path", "recyclo.db")
	viper.SetDefault("progress.max_logs", 200)
	viper.SetDefault("server.addr", ":8080")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig assembles component configs from viper and loaded secrets.
func appConfig() types.AppConfig {
	return types.AppConfig{
		Classifier: types.ClassifierConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("classifier.timeout"),
				UserAgent: viper.GetString("classifier.user_agent"),
			},
			Endpoint:      viper.GetString("classifier.endpoint"),
			APIKey:        secrets.Get(loadedSecrets, "classifier-api-key", viper.GetString("classifier.api_key")),
			MaxImageBytes: viper.GetInt64("classifier.max_image_bytes"),
			MaxRetries:    viper.GetInt("classifier.max_retries"),
		},
		Policy: types.PolicyConfig{
			MinConfidence: viper.GetFloat64("policy.min_confidence"),
			RulesFile:     viper.GetString("policy.rules_file"),
		},
		Progress: types.ProgressConfig{
			DBPath:  viper.GetString("progress.db_path"),
			MaxLogs: viper.GetInt("progress.max_logs"),
		},
		Charity: types.CharityConfig{
			DirectoryFile: viper.GetString("charity.directory_file"),
		},
		Server: types.ServerConfig{
			Addr:   viper.GetString("server.addr"),
			APIKey: secrets.Get(loadedSecrets, "server-api-key", viper.GetString("server.api_key")),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
