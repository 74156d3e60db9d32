// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recyclo/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Review logged classification outcomes",
	Long: `Progress reads the classification log database written by the server
and prints per-user aggregates or raw log entries.`,
}

var progressSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print outcome totals and the last 14 days per day",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		store, err := progress.NewStore(appConfig().Progress)
		if err != nil {
			return err
		}
		defer store.Close()

		summary, err := store.Summarize(context.Background(), user)
		if err != nil {
			return err
		}

		fmt.Printf("total: %d\n", summary.Total)
		for _, outcome := range sortedKeys(summary.Totals) {
			fmt.Printf("  %-10s %d\n", outcome, summary.Totals[outcome])
		}
		fmt.Println("last 14 days:")
		for _, day := range sortedKeys(summary.PerDay) {
			buckets := summary.PerDay[day]
			fmt.Printf("  %s  recyclable=%d compost=%d landfill=%d unsure=%d other=%d\n",
				day, buckets["Recyclable"], buckets["Compost"], buckets["Landfill"],
				buckets["Unsure"], buckets["Other"])
		}
		return nil
	},
}

var progressLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print recent log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := progress.NewStore(appConfig().Progress)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(context.Background(), user, limit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %-10s  %.2f  %s\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Label, e.Confidence, e.Locality)
		}
		fmt.Printf("%d entries\n", len(entries))
		return nil
	},
}

var progressClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete a user's log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		store, err := progress.NewStore(appConfig().Progress)
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.Clear(context.Background(), user)
		if err != nil {
			return err
		}
		fmt.Printf("removed %d entries\n", removed)
		return nil
	},
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	progressCmd.PersistentFlags().String("user", "", "user whose logs to read")

	progressLogsCmd.Flags().Int("limit", 0, "maximum entries (0 = configured default)")

	progressCmd.AddCommand(progressSummaryCmd)
	progressCmd.AddCommand(progressLogsCmd)
	progressCmd.AddCommand(progressClearCmd)

	rootCmd.AddCommand(progressCmd)
}
