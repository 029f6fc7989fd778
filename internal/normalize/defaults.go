package normalize

import "github.com/jonathan/placement-advisor/internal/types"

// Canonical default derived content, substituted when a persisted record's
// generated sections are missing or malformed. Returned as fresh slices so
// callers can never mutate the canon.

// DefaultRoundMapping is the generic 3-round interview shape.
func DefaultRoundMapping() []types.RoundMapping {
	return []types.RoundMapping{
		{
			Round:        1,
			Title:        "Resume Screening",
			Description:  "Resume quality, Project descriptions, Skills alignment",
			WhyItMatters: "First impression matters - recruiters spend 6-7 seconds on initial scan",
		},
		{
			Round:        2,
			Title:        "Technical Interview",
			Description:  "Problem solving, Coding fundamentals, Communication",
			WhyItMatters: "Core assessment of your technical capabilities and thought process",
		},
		{
			Round:        3,
			Title:        "HR/Behavioral Round",
			Description:  "Cultural fit, Career goals, Soft skills",
			WhyItMatters: "Determines if you align with company values and team dynamics",
		},
	}
}

// DefaultChecklist is the minimal two-round preparation checklist.
func DefaultChecklist() []types.RoundChecklist {
	return []types.RoundChecklist{
		{
			Round: 1,
			Title: "Preparation",
			Items: []string{
				"Update resume with relevant projects",
				"Practice coding problems daily",
				"Prepare STAR format stories",
			},
		},
		{
			Round: 2,
			Title: "Technical Readiness",
			Items: []string{
				"Review fundamental concepts",
				"Practice mock interviews",
				"Build confidence through repetition",
			},
		},
	}
}

// DefaultPlan is the skill-agnostic 7-day study plan.
func DefaultPlan() []types.DayPlan {
	return []types.DayPlan{
		{Day: 1, Focus: "Foundation", Tasks: []string{"Review basic coding concepts", "Practice 2 easy problems"}},
		{Day: 2, Focus: "Problem Solving", Tasks: []string{"Work on logic building", "Practice communication while coding"}},
		{Day: 3, Focus: "Projects", Tasks: []string{"Document your projects", "Prepare to explain your role"}},
		{Day: 4, Focus: "Mock Practice", Tasks: []string{"Do a mock interview with friend", "Record yourself explaining code"}},
		{Day: 5, Focus: "Review", Tasks: []string{"Review weak areas", "Practice previous mistakes"}},
		{Day: 6, Focus: "Confidence Building", Tasks: []string{"Solve familiar problems", "Build momentum"}},
		{Day: 7, Focus: "Final Prep", Tasks: []string{"Light practice", "Rest and prepare mentally"}},
	}
}

// DefaultQuestions is the generic interview question list.
func DefaultQuestions() []string {
	return []string{
		"Tell me about yourself and your background.",
		"Describe a challenging project you worked on.",
		"How do you approach problem-solving?",
		"What are your strengths and weaknesses?",
		"Why do you want to work at our company?",
		"Where do you see yourself in 5 years?",
		"Describe a time you worked in a team.",
		"How do you handle stress and deadlines?",
		"What motivates you in your work?",
		"Do you have any questions for us?",
	}
}
