package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/placement-advisor/internal/extract"
	"github.com/jonathan/placement-advisor/internal/generate"
	"github.com/jonathan/placement-advisor/internal/scoring"
	"github.com/jonathan/placement-advisor/internal/types"
)

var (
	analyzeCompany string
	analyzeRole    string
	analyzeJDFile  string
	analyzeJDText  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and save the result",
	Long:  "Extracts skills from a job description, derives the round checklist, 7-day plan, interview questions and company intel, computes the readiness score and persists the analysis.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Role title")
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd", "", "Path to a job description text file (reads stdin when omitted)")
	analyzeCmd.Flags().StringVar(&analyzeJDText, "text", "", "Inline job description text")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	jdText, err := readJD()
	if err != nil {
		return err
	}
	if strings.TrimSpace(jdText) == "" {
		return fmt.Errorf("job description is required")
	}
	if extract.TooShort(jdText) {
		fmt.Fprintln(os.Stderr, "Warning: this JD is too short to analyze deeply. Paste the full JD for better output.")
	}

	gateway, _, cleanup, err := openGateway(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	result := buildAnalysis(analyzeCompany, analyzeRole, jdText)
	gateway.SaveAnalysis(cmd.Context(), result)

	printSummary(result)
	return nil
}

// buildAnalysis runs the full derivation pipeline for one analyze action.
// The base score is computed here, once, and never re-derived afterward.
func buildAnalysis(company, role, jdText string) *types.AnalysisResult {
	skills := extract.Extract(jdText)
	confidence := types.NewSkillConfidenceMap(skills.All())
	baseScore := scoring.BaseScore(skills, company, role, len(jdText))

	intel := generate.Intel(company)
	rounds := []types.RoundMapping{}
	if intel != nil {
		rounds = generate.Rounds(intel.Size, skills)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	return &types.AnalysisResult{
		ID:        newAnalysisID(),
		CreatedAt: now,
		UpdatedAt: now,

		Company: company,
		Role:    role,
		JDText:  jdText,

		ExtractedSkills: skills,
		RoundMapping:    rounds,
		Checklist:       generate.Checklist(skills),
		Plan7Days:       generate.Plan(skills),
		Questions:       generate.Questions(skills),
		CompanyIntel:    intel,

		BaseScore:          baseScore,
		SkillConfidenceMap: confidence,
		FinalScore:         scoring.FinalScore(baseScore, confidence),
	}
}

// newAnalysisID returns a time-ordered unique token (UUIDv7), falling back to
// a random UUID in the unlikely case the clock-based constructor fails.
func newAnalysisID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func readJD() (string, error) {
	if analyzeJDText != "" {
		return analyzeJDText, nil
	}
	if analyzeJDFile != "" {
		data, err := os.ReadFile(analyzeJDFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read job description from stdin: %w", err)
	}
	return string(data), nil
}

func printSummary(result *types.AnalysisResult) {
	fmt.Printf("Analysis %s saved\n", result.ID)
	fmt.Printf("Readiness score: %d/100 (%s)\n", result.FinalScore, scoring.Label(result.FinalScore))

	for _, category := range types.CategoryOrder {
		skills := result.ExtractedSkills.Category(category)
		if len(skills) == 0 {
			continue
		}
		fmt.Printf("  %s: %s\n", category, strings.Join(skills, ", "))
	}

	if result.CompanyIntel != nil {
		fmt.Printf("Company: %s (%s, %s)\n",
			result.CompanyIntel.Name, result.CompanyIntel.SizeLabel, result.CompanyIntel.Industry)
	}
	fmt.Printf("Rounds: %d, questions: %d\n", len(result.RoundMapping), len(result.Questions))
}
