package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-advisor/internal/scoring"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence <id> <skill>",
	Short: "Toggle a skill between practice and know",
	Long:  "Flips the confidence tag of one skill on a saved analysis and recomputes its readiness score. A skill appearing in several categories has a single shared tag.",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfidence,
}

func init() {
	rootCmd.AddCommand(confidenceCmd)
}

func runConfidence(cmd *cobra.Command, args []string) error {
	id, skill := args[0], args[1]

	gateway, _, cleanup, err := openGateway(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	result := gateway.Analysis(cmd.Context(), id)
	if result == nil {
		fmt.Println("No analysis found.")
		return nil
	}

	toggled := scoring.Toggle(result.SkillConfidenceMap, skill)
	score, ok := gateway.UpdateConfidence(cmd.Context(), id, toggled)
	if !ok {
		fmt.Println("No analysis found.")
		return nil
	}

	fmt.Printf("%s: %s\n", skill, toggled[skill])
	fmt.Printf("Readiness score: %d/100 (%s)\n", score, scoring.Label(score))
	return nil
}
