package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses, most recent first",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	gateway, _, cleanup, err := openGateway(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	entries := gateway.History(cmd.Context())

	// One-shot corruption notice: shown once, then cleared.
	if gateway.CorruptionObserved(cmd.Context()) {
		fmt.Fprintln(os.Stderr, "Warning: some saved entries were unreadable and have been skipped.")
		gateway.ClearCorruptionFlag(cmd.Context())
	}

	if len(entries) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%s  %3d/100  %-20s %-20s %s\n",
			entry.ID, entry.ReadinessScore,
			valueOr(entry.Company, "-"), valueOr(entry.Role, "-"),
			entry.CreatedAt)
	}
	return nil
}
