// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recyclo/internal/classifier"
	"github.com/pdiddy/recyclo/internal/guideline"
	"github.com/pdiddy/recyclo/internal/policy"
	"github.com/pdiddy/recyclo/internal/tips"
	"github.com/pdiddy/recyclo/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [image file]",
	Short: "Classify one image and print the disposal verdict",
	Long: `Classify sends an image file to the inference service, resolves the
prediction against locality guidelines and item attributes, and prints
the verdict.

Attributes are repeatable flags, e.g.
  recyclo classify pizza-box.jpg --city austin --attr greasy_or_wet`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := appConfig()
	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		cfg.Classifier.Endpoint = endpoint
	}

	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	store, err := guideline.Load(cfg.Policy)
	if err != nil {
		return err
	}
	resolver := policy.NewResolver(store, tips.Default(), cfg.Policy)

	preds, err := classifier.NewHTTP(cfg.Classifier).Classify(context.Background(), image)
	if err != nil {
		return err
	}

	city, _ := cmd.Flags().GetString("city")
	attrFlags, _ := cmd.Flags().GetStringSlice("attr")
	attrs := attrsFromFlags(attrFlags)

	verdict := resolver.Resolve(preds, policy.NormalizeLocality(city), attrs)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(verdict)
	}

	printVerdict(verdict, preds)
	return nil
}

// attrsFromFlags parses repeated --attr values. A bare key means true;
// key=value goes through the tolerant boolean vocabulary.
func attrsFromFlags(flags []string) types.Attributes {
	raw := make(map[string]bool, len(flags))
	for _, f := range flags {
		key, value, found := strings.Cut(f, "=")
		if found {
			raw[key] = policy.CoerceBool(value)
		} else {
			raw[key] = true
		}
	}
	return policy.NormalizeAttributes(raw)
}

func printVerdict(v types.Verdict, preds []types.Prediction) {
	if v.Abstained {
		fmt.Printf("Unsure (%.1f%% confidence): %s\n", v.Confidence*100, v.Why)
	} else {
		fmt.Printf("%s → %s (%.1f%% confidence)\n", v.Material, v.Action, v.Confidence*100)
		fmt.Println("  why:", v.Why)
	}
	if v.Tip != "" {
		fmt.Println("  tip:", v.Tip)
	}
	if len(preds) > 1 {
		fmt.Println("  ranking:")
		for _, p := range preds {
			fmt.Printf("    %-12s %.3f\n", p.Label, p.Probability)
		}
	}
}

func init() {
	classifyCmd.Flags().String("city", "", "locality whose recycling rules apply")
	classifyCmd.Flags().StringSlice("attr", nil, "item attribute flag (repeatable): soft_bag, foam, paper_cup_or_carton, greasy_or_wet, hazard")
	classifyCmd.Flags().String("endpoint", "", "inference service URL (overrides config)")
	classifyCmd.Flags().Bool("json", false, "output the verdict as JSON")

	rootCmd.AddCommand(classifyCmd)
}
