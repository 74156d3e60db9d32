// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recyclo/internal/charity"
	"github.com/pdiddy/recyclo/internal/classifier"
	"github.com/pdiddy/recyclo/internal/guideline"
	"github.com/pdiddy/recyclo/internal/policy"
	"github.com/pdiddy/recyclo/internal/progress"
	"github.com/pdiddy/recyclo/internal/server"
	"github.com/pdiddy/recyclo/internal/tips"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP classification API",
	Long: `Serve loads the guideline ruleset, tip table, and charity directory,
opens the classification log database, and serves the HTTP API until
interrupted. All tables are loaded once before the first request.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := appConfig()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	store, err := guideline.Load(cfg.Policy)
	if err != nil {
		return err
	}
	resolver := policy.NewResolver(store, tips.Default(), cfg.Policy)

	logs, err := progress.NewStore(cfg.Progress)
	if err != nil {
		return err
	}
	defer logs.Close()

	charities, err := charity.Load(cfg.Charity)
	if err != nil {
		return err
	}

	srv := server.New(classifier.NewHTTP(cfg.Classifier), resolver, logs, charities, cfg.Server)

	fmt.Fprintf(os.Stderr, "recyclo listening on %s (localities: %d, min confidence: %.2f)\n",
		cfg.Server.Addr, len(store.Localities()), resolver.MinConfidence())
	return srv.Run()
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
