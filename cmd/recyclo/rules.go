// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recyclo/internal/guideline"
	"github.com/pdiddy/recyclo/internal/policy"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the locality guideline ruleset",
	Long: `Rules loads the built-in guideline ruleset plus any configured rules
file and prints it. Use subcommands to list known localities or show the
rules applied for a material under a locality.`,
}

var rulesLocalitiesCmd = &cobra.Command{
	Use:   "localities",
	Short: "List localities with their own rule tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := guideline.Load(appConfig().Policy)
		if err != nil {
			return err
		}
		for _, loc := range store.Localities() {
			fmt.Println(policy.DisplayLocality(loc))
		}
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the rules for a locality, optionally one material",
	RunE:  runRulesShow,
}

func runRulesShow(cmd *cobra.Command, args []string) error {
	store, err := guideline.Load(appConfig().Policy)
	if err != nil {
		return err
	}

	locality, _ := cmd.Flags().GetString("locality")
	locality = policy.NormalizeLocality(locality)

	materials := store.Materials(locality)
	if material, _ := cmd.Flags().GetString("material"); material != "" {
		materials = []string{material}
	}
	if len(materials) == 0 {
		return fmt.Errorf("no rules for locality %q", locality)
	}

	for _, material := range materials {
		rules := store.Lookup(material, locality)
		if len(rules) == 0 {
			fmt.Printf("%s: no rules\n", material)
			continue
		}
		fmt.Printf("%s (%s):\n", material, policy.DisplayLocality(rules[0].Locality))
		for _, r := range rules {
			if r.Attribute != "" {
				fmt.Printf("  if %-22s → %s\n", r.Attribute, r.Action)
			} else {
				fmt.Printf("  otherwise%16s → %s\n", "", r.Action)
			}
		}
	}
	return nil
}

func init() {
	rulesShowCmd.Flags().String("locality", "default", "locality to show rules for")
	rulesShowCmd.Flags().String("material", "", "limit output to one material")

	rulesCmd.AddCommand(rulesLocalitiesCmd)
	rulesCmd.AddCommand(rulesShowCmd)

	rootCmd.AddCommand(rulesCmd)
}
