// Package types provides type definitions for structured data used throughout the placement-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill category names, in canonical display order.
const (
	CategoryCoreCS    = "coreCS"
	CategoryLanguages = "languages"
	CategoryWeb       = "web"
	CategoryData      = "data"
	CategoryCloud     = "cloud"
	CategoryTesting   = "testing"
	CategoryOther     = "other"
)

// CategoryOrder lists every skill category in canonical display order.
var CategoryOrder = []string{
	CategoryCoreCS,
	CategoryLanguages,
	CategoryWeb,
	CategoryData,
	CategoryCloud,
	CategoryTesting,
	CategoryOther,
}

// ExtractedSkills holds the skills detected in a job description, grouped by
// category. A skill name may legally appear in more than one category; within
// a category names are unique.
type ExtractedSkills struct {
	CoreCS    []string `json:"coreCS"`
	Languages []string `json:"languages"`
	Web       []string `json:"web"`
	Data      []string `json:"data"`
	Cloud     []string `json:"cloud"`
	Testing   []string `json:"testing"`
	Other     []string `json:"other"`
}

// Category returns the skill list for a named category, nil for unknown names.
func (s ExtractedSkills) Category(name string) []string {
	switch name {
	case CategoryCoreCS:
		return s.CoreCS
	case CategoryLanguages:
		return s.Languages
	case CategoryWeb:
		return s.Web
	case CategoryData:
		return s.Data
	case CategoryCloud:
		return s.Cloud
	case CategoryTesting:
		return s.Testing
	case CategoryOther:
		return s.Other
	}
	return nil
}

// IsEmpty reports whether no skill was detected in any category.
func (s ExtractedSkills) IsEmpty() bool {
	for _, name := range CategoryOrder {
		if len(s.Category(name)) > 0 {
			return false
		}
	}
	return true
}

// Categories returns the names of the non-empty categories in canonical order.
func (s ExtractedSkills) Categories() []string {
	categories := make([]string, 0, len(CategoryOrder))
	for _, name := range CategoryOrder {
		if len(s.Category(name)) > 0 {
			categories = append(categories, name)
		}
	}
	return categories
}

// All returns every detected skill name flattened into a single slice, in
// category order, de-duplicated across categories.
func (s ExtractedSkills) All() []string {
	seen := make(map[string]bool)
	all := make([]string, 0)
	for _, name := range CategoryOrder {
		for _, skill := range s.Category(name) {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			all = append(all, skill)
		}
	}
	return all
}

// SkillConfidence is a per-skill self-assessment tag.
type SkillConfidence string

// Confidence values. Anything else is treated as ConfidencePractice when read.
const (
	ConfidenceKnow     SkillConfidence = "know"
	ConfidencePractice SkillConfidence = "practice"
)

// SkillConfidenceMap maps a skill name to its confidence tag. Keys are skill
// names only, never name+category: a skill that appears in several categories
// has a single shared entry. A missing key reads as ConfidencePractice.
type SkillConfidenceMap map[string]SkillConfidence

// NewSkillConfidenceMap initializes a confidence map with the default
// "practice" tag for every given skill.
func NewSkillConfidenceMap(skills []string) SkillConfidenceMap {
	m := make(SkillConfidenceMap, len(skills))
	for _, skill := range skills {
		m[skill] = ConfidencePractice
	}
	return m
}

// Clone returns a shallow copy so callers can toggle without mutating the
// stored record.
func (m SkillConfidenceMap) Clone() SkillConfidenceMap {
	clone := make(SkillConfidenceMap, len(m))
	for skill, confidence := range m {
		clone[skill] = confidence
	}
	return clone
}

// RoundMapping describes one interview round tailored to company size and
// detected skills.
type RoundMapping struct {
	Round        int    `json:"round"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	WhyItMatters string `json:"whyItMatters"`
}

// RoundChecklist is one round's preparation checklist.
type RoundChecklist struct {
	Round int      `json:"round"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// DayPlan is one day of the 7-day study plan.
type DayPlan struct {
	Day   int      `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// CompanySize classifies a company by headcount bracket.
type CompanySize string

// Company size classes.
const (
	SizeStartup    CompanySize = "startup"
	SizeMidSize    CompanySize = "mid-size"
	SizeEnterprise CompanySize = "enterprise"
)

// CompanyIntel is a heuristic company profile inferred from the company name.
// Immutable once generated; nil iff the company name was blank.
type CompanyIntel struct {
	Name        string      `json:"name"`
	Industry    string      `json:"industry"`
	Size        CompanySize `json:"size"`
	SizeLabel   string      `json:"sizeLabel"`
	HiringFocus string      `json:"hiringFocus"`
}

// AnalysisResult is the root persisted entity for one analyze action.
//
// After creation only SkillConfidenceMap, FinalScore and UpdatedAt ever
// change; everything else is an immutable fact about the analysis. A new
// analysis of the same job description creates a new record.
type AnalysisResult struct {
	// Identity
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	// Input context
	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jdText"`

	// Derived data
	ExtractedSkills ExtractedSkills  `json:"extractedSkills"`
	RoundMapping    []RoundMapping   `json:"roundMapping"`
	Checklist       []RoundChecklist `json:"checklist"`
	Plan7Days       []DayPlan        `json:"plan7Days"`
	Questions       []string         `json:"questions"`
	CompanyIntel    *CompanyIntel    `json:"companyIntel,omitempty"`

	// Scoring. FinalScore always equals the recomputation from BaseScore and
	// SkillConfidenceMap; BaseScore is computed once at creation.
	BaseScore          int                `json:"baseScore"`
	SkillConfidenceMap SkillConfidenceMap `json:"skillConfidenceMap"`
	FinalScore         int                `json:"finalScore"`
}

// HistoryEntry is the lightweight projection of an AnalysisResult kept in the
// most-recent-first history index. ReadinessScore mirrors the record's
// FinalScore.
type HistoryEntry struct {
	ID             string `json:"id"`
	CreatedAt      string `json:"createdAt"`
	Company        string `json:"company"`
	Role           string `json:"role"`
	ReadinessScore int    `json:"readinessScore"`
}

// HistoryEntryOf projects an AnalysisResult into its history index form.
func HistoryEntryOf(result *AnalysisResult) HistoryEntry {
	return HistoryEntry{
		ID:             result.ID,
		CreatedAt:      result.CreatedAt,
		Company:        result.Company,
		Role:           result.Role,
		ReadinessScore: result.FinalScore,
	}
}
