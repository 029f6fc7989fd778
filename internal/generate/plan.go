package generate

import (
	"fmt"

	"github.com/jonathan/placement-advisor/internal/types"
)

// Plan builds the 7-day study plan: a fixed per-day skeleton with extra tasks
// appended for detected skills.
func Plan(skills types.ExtractedSkills) []types.DayPlan {
	day1 := []string{
		"Review fundamental data structures (arrays, linked lists, stacks, queues)",
		"Study time and space complexity analysis",
		"Practice 3-4 basic coding problems",
	}
	if contains(skills.CoreCS, "OOP") {
		day1 = append(day1, "Review OOP principles: encapsulation, inheritance, polymorphism")
	}

	day2 := []string{
		"Study advanced data structures (trees, graphs, heaps)",
		"Review core CS concepts based on JD requirements",
		"Practice 3-4 medium coding problems",
	}
	if contains(skills.CoreCS, "DBMS") {
		day2 = append(day2, "Review database concepts: normalization, indexing, transactions")
	}
	if contains(skills.CoreCS, "OS") {
		day2 = append(day2, "Study OS concepts: processes, threads, memory management")
	}

	day3 := []string{
		"Focus on sorting and searching algorithms",
		"Practice binary search variations",
		"Solve 4-5 DSA problems on arrays and strings",
	}
	if len(skills.Languages) > 0 {
		day3 = append(day3, fmt.Sprintf("Review %s specific optimizations and best practices", skills.Languages[0]))
	}

	day4 := []string{
		"Study dynamic programming patterns",
		"Practice tree and graph traversal algorithms",
		"Solve 4-5 advanced DSA problems",
		"Review recursion and backtracking techniques",
	}

	day5 := []string{
		"Update resume with relevant keywords from JD",
		"Prepare 2-minute pitch for each major project",
		"Document your role, challenges faced, and impact metrics",
	}
	if len(skills.Web) > 0 {
		day5 = append(day5, fmt.Sprintf("Review %s project architecture", topTwo(skills.Web)))
	}
	if len(skills.Data) > 0 {
		day5 = append(day5, "Prepare database schema explanations for your projects")
	}
	if len(skills.Cloud) > 0 {
		day5 = append(day5, "Document deployment and infrastructure details")
	}

	day6 := []string{
		"Practice 5-10 technical questions from generated list",
		"Conduct mock interview with peer or use recording",
		"Review and refine your answers",
	}
	if len(skills.Web) > 0 {
		day6 = append(day6, "Prepare for frontend/system design discussions")
	}
	if len(skills.Testing) > 0 {
		day6 = append(day6, "Review testing strategies and frameworks")
	}

	day7 := []string{
		"Identify and focus on weak areas from practice",
		"Review all notes and key concepts",
		"Practice 2-3 full mock interviews",
		"Prepare questions to ask the interviewer",
		"Rest and mentally prepare for the interview",
	}
	if len(skills.Languages) > 0 {
		day7 = append(day7, fmt.Sprintf("Quick revision of %s syntax and common pitfalls", skills.Languages[0]))
	}

	return []types.DayPlan{
		{Day: 1, Focus: "Basics + Core CS - Part 1", Tasks: day1},
		{Day: 2, Focus: "Basics + Core CS - Part 2", Tasks: day2},
		{Day: 3, Focus: "DSA + Coding - Part 1", Tasks: day3},
		{Day: 4, Focus: "DSA + Coding - Part 2", Tasks: day4},
		{Day: 5, Focus: "Project + Resume Alignment", Tasks: day5},
		{Day: 6, Focus: "Mock Interview Questions", Tasks: day6},
		{Day: 7, Focus: "Revision + Weak Areas", Tasks: day7},
	}
}
