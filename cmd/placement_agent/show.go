package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-advisor/internal/scoring"
	"github.com/jonathan/placement-advisor/internal/types"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show an analysis (the current one when no id is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	gateway, _, cleanup, err := openGateway(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	var result *types.AnalysisResult
	if len(args) == 1 {
		result = gateway.Analysis(cmd.Context(), args[0])
	} else {
		result = gateway.Current(cmd.Context())
	}
	if result == nil {
		fmt.Println("No analysis found.")
		return nil
	}

	printAnalysis(result)
	return nil
}

func printAnalysis(result *types.AnalysisResult) {
	fmt.Printf("Analysis %s (created %s)\n", result.ID, result.CreatedAt)
	fmt.Printf("Company: %s  Role: %s\n", valueOr(result.Company, "-"), valueOr(result.Role, "-"))
	fmt.Printf("Score: %d/100 (%s), base %d\n",
		result.FinalScore, scoring.Label(result.FinalScore), result.BaseScore)

	fmt.Println("\nSkills:")
	for _, category := range types.CategoryOrder {
		skills := result.ExtractedSkills.Category(category)
		if len(skills) == 0 {
			continue
		}
		tagged := make([]string, 0, len(skills))
		for _, skill := range skills {
			confidence := result.SkillConfidenceMap[skill]
			if confidence != types.ConfidenceKnow {
				confidence = types.ConfidencePractice
			}
			tagged = append(tagged, fmt.Sprintf("%s [%s]", skill, confidence))
		}
		fmt.Printf("  %s: %s\n", category, strings.Join(tagged, ", "))
	}

	if result.CompanyIntel != nil {
		intel := result.CompanyIntel
		fmt.Printf("\nCompany intel: %s (%s, %s)\n", intel.Name, intel.SizeLabel, intel.Industry)
		fmt.Printf("  %s\n", intel.HiringFocus)
	}

	if len(result.RoundMapping) > 0 {
		fmt.Println("\nRounds:")
		for _, round := range result.RoundMapping {
			fmt.Printf("  %d. %s: %s\n", round.Round, round.Title, round.Description)
		}
	}

	fmt.Println("\nConfidence map:")
	skills := make([]string, 0, len(result.SkillConfidenceMap))
	for skill := range result.SkillConfidenceMap {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	for _, skill := range skills {
		fmt.Printf("  %s: %s\n", skill, result.SkillConfidenceMap[skill])
	}
}

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
