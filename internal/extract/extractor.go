// Package extract scans raw job description text for known skill keywords.
package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/placement-advisor/internal/types"
)

// MinJDLength is the advisory minimum length for a useful analysis. Shorter
// text still analyzes; callers may surface a warning.
const MinJDLength = 200

// matchKind selects how a rule's keyword is tested against the text.
type matchKind int

const (
	// matchSubstring tests case-insensitive substring presence.
	matchSubstring matchKind = iota
	// matchWord tests standalone-word presence. The token must not be
	// followed by '+' or '#' so that "C" never fires on "C++" or "C#".
	matchWord
)

// rule pairs a canonical display spelling with its match strategy.
type rule struct {
	canonical string
	kind      matchKind
}

func sub(canonical string) rule  { return rule{canonical: canonical, kind: matchSubstring} }
func word(canonical string) rule { return rule{canonical: canonical, kind: matchWord} }

// categoryRules is the static keyword table, evaluated independently per
// category in canonical category order.
var categoryRules = map[string][]rule{
	types.CategoryCoreCS: {
		sub("DSA"), sub("OOP"), sub("DBMS"), sub("OS"), sub("Networks"),
	},
	types.CategoryLanguages: {
		sub("Java"), sub("Python"), sub("JavaScript"), sub("TypeScript"),
		word("C"), sub("C++"), sub("C#"), sub("Go"),
	},
	types.CategoryWeb: {
		sub("React"), sub("Next.js"), sub("Node.js"), sub("Express"),
		sub("REST"), sub("GraphQL"),
	},
	types.CategoryData: {
		sub("SQL"), sub("MongoDB"), sub("PostgreSQL"), sub("MySQL"), sub("Redis"),
	},
	types.CategoryCloud: {
		sub("AWS"), sub("Azure"), sub("GCP"), sub("Docker"),
		sub("Kubernetes"), sub("CI/CD"), sub("Linux"),
	},
	types.CategoryTesting: {
		sub("Selenium"), sub("Cypress"), sub("Playwright"), sub("JUnit"), sub("PyTest"),
	},
}

// wordPatterns caches the compiled standalone-word pattern per keyword.
var wordPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, rules := range categoryRules {
		for _, r := range rules {
			if r.kind != matchWord {
				continue
			}
			token := regexp.QuoteMeta(strings.ToLower(r.canonical))
			// Word-boundary on both sides, with '+' and '#' excluded on the
			// right so the bare token does not fire inside "c++" or "c#".
			wordPatterns[r.canonical] = regexp.MustCompile(
				`(^|[^a-z0-9_])` + token + `($|[^a-z0-9_+#])`)
		}
	}
}

// FallbackSkills is the fixed skill set substituted when keyword matching
// detects nothing at all. Callers never see an all-empty ExtractedSkills.
func FallbackSkills() types.ExtractedSkills {
	return types.ExtractedSkills{
		CoreCS:    []string{},
		Languages: []string{},
		Web:       []string{},
		Data:      []string{},
		Cloud:     []string{},
		Testing:   []string{},
		Other:     []string{"Communication", "Problem solving", "Basic coding", "Projects"},
	}
}

// Extract scans text for configured skill keywords across all categories.
// Matching is case-insensitive; each matched keyword contributes its canonical
// display spelling. Deterministic for fixed input, never fails.
func Extract(text string) types.ExtractedSkills {
	lowered := strings.ToLower(text)

	skills := types.ExtractedSkills{
		CoreCS:    matchCategory(lowered, types.CategoryCoreCS),
		Languages: matchCategory(lowered, types.CategoryLanguages),
		Web:       matchCategory(lowered, types.CategoryWeb),
		Data:      matchCategory(lowered, types.CategoryData),
		Cloud:     matchCategory(lowered, types.CategoryCloud),
		Testing:   matchCategory(lowered, types.CategoryTesting),
		Other:     []string{},
	}

	if skills.IsEmpty() {
		return FallbackSkills()
	}
	return skills
}

func matchCategory(lowered, category string) []string {
	matched := make([]string, 0)
	seen := make(map[string]bool)
	for _, r := range categoryRules[category] {
		if seen[r.canonical] || !r.matches(lowered) {
			continue
		}
		seen[r.canonical] = true
		matched = append(matched, r.canonical)
	}
	return matched
}

func (r rule) matches(lowered string) bool {
	switch r.kind {
	case matchWord:
		return wordPatterns[r.canonical].MatchString(lowered)
	default:
		return strings.Contains(lowered, strings.ToLower(r.canonical))
	}
}

// TooShort reports whether the job description is below the advisory minimum
// length for a deep analysis.
func TooShort(jdText string) bool {
	trimmed := strings.TrimSpace(jdText)
	return trimmed != "" && len(jdText) < MinJDLength
}
