package generate

import "github.com/jonathan/placement-advisor/internal/types"

// Rounds maps company size to an interview round sequence. The whole skeleton
// branches on size: enterprise gets 4 rounds, mid-size 3, startup 2, extended
// to 3 when the skill set signals depth (DSA, or system-design/cloud skills).
func Rounds(size types.CompanySize, skills types.ExtractedSkills) []types.RoundMapping {
	hasDSA := contains(skills.CoreCS, "DSA")
	hasWeb := len(skills.Web) > 0
	hasSystemDesign := contains(skills.CoreCS, "System Design") || len(skills.Cloud) > 0

	switch size {
	case types.SizeEnterprise:
		round2 := "Core CS fundamentals: OOP, DBMS, OS concepts"
		if hasDSA {
			round2 = "Deep DSA discussion: arrays, trees, graphs, dynamic programming"
		}
		round3 := "Project discussion + Coding + Technology stack questions"
		if hasSystemDesign {
			round3 = "System design + Project deep dive + Low-level design"
		}
		return []types.RoundMapping{
			{
				Round:        1,
				Title:        "Online Assessment",
				Description:  "DSA problems + Aptitude tests on HackerRank/Codility platform",
				WhyItMatters: "Enterprise companies use this to filter candidates at scale. Focus on speed and accuracy.",
			},
			{
				Round:        2,
				Title:        "Technical Interview I",
				Description:  round2,
				WhyItMatters: "Tests your problem-solving approach and CS fundamentals depth.",
			},
			{
				Round:        3,
				Title:        "Technical Interview II",
				Description:  round3,
				WhyItMatters: "Evaluates your ability to design scalable systems and technical ownership.",
			},
			{
				Round:        4,
				Title:        "Managerial / HR Round",
				Description:  "Behavioral questions, culture fit, compensation discussion",
				WhyItMatters: "Assesses cultural alignment, communication skills, and long-term fit.",
			},
		}

	case types.SizeMidSize:
		round1 := "Coding + Core CS + Practical problem solving"
		if hasDSA {
			round1 = "DSA + Coding problems + Basic system design"
		}
		round2 := "Technology stack deep dive + Project walkthrough"
		if hasWeb {
			round2 = "Full-stack discussion + Architecture + Project experience"
		}
		return []types.RoundMapping{
			{
				Round:        1,
				Title:        "Technical Screening",
				Description:  round1,
				WhyItMatters: "Mid-size companies need developers who can code efficiently and understand systems.",
			},
			{
				Round:        2,
				Title:        "Technical Deep Dive",
				Description:  round2,
				WhyItMatters: "Tests hands-on experience with relevant technologies and project ownership.",
			},
			{
				Round:        3,
				Title:        "Culture & Leadership Fit",
				Description:  "Behavioral questions, team collaboration, growth mindset",
				WhyItMatters: "Mid-size companies value cultural fit and adaptability highly.",
			},
		}

	default: // startup
		round1 := "Solve real-world problems + Code review discussion"
		if hasWeb {
			round1 = "Build a small feature or component in your stack"
		}
		rounds := []types.RoundMapping{
			{
				Round:        1,
				Title:        "Practical Coding",
				Description:  round1,
				WhyItMatters: "Startups need people who can ship code quickly and write production-quality code.",
			},
			{
				Round:        2,
				Title:        "System & Architecture",
				Description:  "Design discussion + Tech choices + How you'd build X",
				WhyItMatters: "Evaluates your ability to make technical decisions and build from scratch.",
			},
		}
		if hasDSA || hasSystemDesign {
			rounds = append(rounds, types.RoundMapping{
				Round:        3,
				Title:        "Founder / Team Fit",
				Description:  "Culture fit, ownership mindset, problem-solving approach",
				WhyItMatters: "Early-stage startups need people who align with the mission and can wear multiple hats.",
			})
		}
		return rounds
	}
}
