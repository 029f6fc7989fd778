// Package generate derives preparation content from extracted skills and
// company context. Every generator is a pure function: fixed skeleton content
// plus rule-based additions keyed on skill presence, no shared state.
package generate

import (
	"fmt"
	"strings"

	"github.com/jonathan/placement-advisor/internal/types"
)

// Checklist builds the 4-round preparation checklist. Rounds 1 and 4 are
// fully static; rounds 2 and 3 gain items for detected core-CS topics and the
// top two mentions of each technology category.
func Checklist(skills types.ExtractedSkills) []types.RoundChecklist {
	round2 := []string{
		"Review arrays, strings, and linked lists",
		"Practice tree and graph problems",
		"Solve dynamic programming questions",
		"Review sorting and searching algorithms",
	}
	if contains(skills.CoreCS, "OOP") {
		round2 = append(round2, "Study OOP principles and design patterns")
	}
	if contains(skills.CoreCS, "DBMS") {
		round2 = append(round2, "Review database normalization and SQL queries")
	}
	if contains(skills.CoreCS, "OS") {
		round2 = append(round2, "Study operating system concepts")
	}
	if contains(skills.CoreCS, "Networks") {
		round2 = append(round2, "Review networking protocols and OSI model")
	}

	round3 := []string{
		"Prepare project explanations with architecture diagrams",
		"Review your role and contributions in each project",
	}
	if len(skills.Languages) > 0 {
		round3 = append(round3, fmt.Sprintf("Deep dive into %s concepts", topTwo(skills.Languages)))
	}
	if len(skills.Web) > 0 {
		round3 = append(round3, fmt.Sprintf("Study %s architecture and best practices", topTwo(skills.Web)))
	}
	if len(skills.Data) > 0 {
		round3 = append(round3, fmt.Sprintf("Review database design with %s", topTwo(skills.Data)))
	}
	if len(skills.Cloud) > 0 {
		round3 = append(round3, fmt.Sprintf("Understand %s deployment workflows", topTwo(skills.Cloud)))
	}

	return []types.RoundChecklist{
		{
			Round: 1,
			Title: "Aptitude / Basics",
			Items: []string{
				"Practice quantitative aptitude problems",
				"Review logical reasoning concepts",
				"Solve verbal ability questions",
				"Complete 2 full-length mock tests",
				"Review basic mathematics formulas",
			},
		},
		{Round: 2, Title: "DSA + Core CS", Items: round2},
		{Round: 3, Title: "Tech Interview (Projects + Stack)", Items: round3},
		{
			Round: 4,
			Title: "Managerial / HR",
			Items: []string{
				"Prepare STAR format answers for behavioral questions",
				"Research company culture and values",
				"Prepare questions to ask the interviewer",
				"Practice salary negotiation techniques",
				"Review your resume thoroughly",
				"Prepare self-introduction (1-2 minutes)",
				"Identify your strengths and weaknesses",
			},
		},
	}
}

func contains(skills []string, name string) bool {
	for _, s := range skills {
		if s == name {
			return true
		}
	}
	return false
}

// topTwo joins the first two entries of a skill list for interpolation into
// checklist and plan text.
func topTwo(skills []string) string {
	if len(skills) > 2 {
		skills = skills[:2]
	}
	return strings.Join(skills, ", ")
}
