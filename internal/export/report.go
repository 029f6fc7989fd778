// Package export renders an analysis record into its plain-text report form.
// Pure string formatting: the output is byte-for-byte reproducible from the
// record's fields.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/placement-advisor/internal/types"
)

const notSpecified = "Not specified"

// Report builds the downloadable text report for an analysis.
func Report(result *types.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString("PLACEMENT READINESS ANALYSIS\n")
	sb.WriteString("============================\n\n")

	sb.WriteString(fmt.Sprintf("Company: %s\n", orDefault(result.Company)))
	sb.WriteString(fmt.Sprintf("Role: %s\n", orDefault(result.Role)))
	sb.WriteString(fmt.Sprintf("Date: %s\n", reportDate(result.CreatedAt)))
	sb.WriteString(fmt.Sprintf("Readiness Score: %d/100\n\n", result.FinalScore))

	sb.WriteString("KEY SKILLS EXTRACTED\n")
	sb.WriteString("--------------------\n")
	for _, category := range types.CategoryOrder {
		skills := result.ExtractedSkills.Category(category)
		if len(skills) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", category, strings.Join(skills, ", ")))
	}

	sb.WriteString("\n7-DAY PREPARATION PLAN\n")
	sb.WriteString("----------------------\n")
	for _, day := range result.Plan7Days {
		sb.WriteString(fmt.Sprintf("\nDay %d: %s\n", day.Day, day.Focus))
		for _, task := range day.Tasks {
			sb.WriteString(fmt.Sprintf("- %s\n", task))
		}
	}

	sb.WriteString("\nROUND-WISE CHECKLIST\n")
	sb.WriteString("--------------------\n")
	for _, round := range result.Checklist {
		sb.WriteString(fmt.Sprintf("\n%s\n", round.Title))
		for _, item := range round.Items {
			sb.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}

	sb.WriteString("\nINTERVIEW QUESTIONS\n")
	sb.WriteString("-------------------\n")
	for i, question := range result.Questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, question))
	}

	return sb.String()
}

// Filename builds the suggested file name for a report, dated by the
// analysis creation time.
func Filename(result *types.AnalysisResult) string {
	company := strings.TrimSpace(result.Company)
	if company == "" {
		company = "analysis"
	}
	company = strings.ReplaceAll(company, " ", "-")
	return fmt.Sprintf("placement-analysis-%s-%s.txt", company, reportDate(result.CreatedAt))
}

// reportDate formats an RFC3339 timestamp as yyyy-mm-dd, falling back to the
// raw value when it does not parse.
func reportDate(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format("2006-01-02")
}

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}
