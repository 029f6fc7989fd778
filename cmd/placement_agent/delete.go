package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved analysis and its history entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved analyses and history",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	gateway, _, cleanup, err := openGateway(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	gateway.Delete(cmd.Context(), args[0])
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	gateway, _, cleanup, err := openGateway(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	gateway.ClearAll(cmd.Context())
	fmt.Println("History cleared")
	return nil
}
