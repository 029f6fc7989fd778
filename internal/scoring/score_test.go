package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/placement-advisor/internal/extract"
	"github.com/jonathan/placement-advisor/internal/types"
)

func TestBaseScore_FallbackOnlyExtraction(t *testing.T) {
	// Fallback skills live in the "other" category, which counts toward the
	// category bonus like any other: 35 + 5.
	score := BaseScore(extract.FallbackSkills(), "", "", 100)
	assert.Equal(t, 40, score)
}

func TestBaseScore_AllBonuses(t *testing.T) {
	skills := types.ExtractedSkills{
		CoreCS:    []string{"DSA"},
		Languages: []string{"Java"},
		Web:       []string{"React"},
		Data:      []string{"SQL"},
		Cloud:     []string{"AWS"},
		Testing:   []string{"Selenium"},
	}

	// 35 + 30 (six categories, capped at 30) + 10 + 10 + 10 > 100, clamps.
	assert.Equal(t, 100, BaseScore(skills, "Acme", "SDE", 1000))

	// Without any context bonus: 35 + 30.
	assert.Equal(t, 65, BaseScore(skills, "", "", 100))
}

func TestBaseScore_CategoryBonusCap(t *testing.T) {
	six := types.ExtractedSkills{
		CoreCS:    []string{"DSA"},
		Languages: []string{"Java"},
		Web:       []string{"React"},
		Data:      []string{"SQL"},
		Cloud:     []string{"AWS"},
		Testing:   []string{"Selenium"},
	}
	seven := six
	seven.Other = []string{"Communication"}

	// The seventh category adds nothing past the cap.
	assert.Equal(t, BaseScore(six, "", "", 0), BaseScore(seven, "", "", 0))
}

func TestBaseScore_ContextBonuses(t *testing.T) {
	skills := types.ExtractedSkills{Languages: []string{"Java"}}
	base := 35 + 5

	tests := []struct {
		name     string
		company  string
		role     string
		jdLength int
		want     int
	}{
		{"no context", "", "", 0, base},
		{"company only", "Acme", "", 0, base + 10},
		{"role only", "", "SDE", 0, base + 10},
		{"long jd only", "", "", 801, base + 10},
		{"jd at threshold does not count", "", "", 800, base},
		{"whitespace company does not count", "   ", "", 0, base},
		{"all three", "Acme", "SDE", 900, base + 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseScore(skills, tt.company, tt.role, tt.jdLength))
		})
	}
}

func TestFinalScore_EmptyMapIsBase(t *testing.T) {
	assert.Equal(t, 70, FinalScore(70, types.SkillConfidenceMap{}))
	assert.Equal(t, 70, FinalScore(70, nil))
}

func TestFinalScore_PerSkillAdjustment(t *testing.T) {
	confidence := types.SkillConfidenceMap{
		"Java":   types.ConfidenceKnow,
		"Python": types.ConfidenceKnow,
		"React":  types.ConfidencePractice,
	}

	// +2 +2 -2 on a base of 70.
	assert.Equal(t, 72, FinalScore(70, confidence))
}

func TestFinalScore_UnrecognizedReadsAsPractice(t *testing.T) {
	confidence := types.SkillConfidenceMap{"Java": "expert"}
	assert.Equal(t, 68, FinalScore(70, confidence))
}

func TestFinalScore_Clamps(t *testing.T) {
	allKnow := types.SkillConfidenceMap{}
	for _, skill := range []string{"a", "b", "c", "d", "e", "f"} {
		allKnow[skill] = types.ConfidenceKnow
	}
	assert.Equal(t, 100, FinalScore(95, allKnow))

	allPractice := types.SkillConfidenceMap{}
	for _, skill := range []string{"a", "b", "c", "d", "e", "f"} {
		allPractice[skill] = types.ConfidencePractice
	}
	assert.Equal(t, 0, FinalScore(5, allPractice))
}

func TestToggle_FlipsBothWays(t *testing.T) {
	confidence := types.SkillConfidenceMap{"Java": types.ConfidencePractice}

	once := Toggle(confidence, "Java")
	assert.Equal(t, types.ConfidenceKnow, once["Java"])

	twice := Toggle(once, "Java")
	assert.Equal(t, types.ConfidencePractice, twice["Java"])
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	confidence := types.SkillConfidenceMap{"Java": types.ConfidencePractice}
	Toggle(confidence, "Java")
	assert.Equal(t, types.ConfidencePractice, confidence["Java"])
}

func TestToggle_UnknownSkillBecomesKnow(t *testing.T) {
	// A missing key reads as practice, so the first toggle lands on know.
	toggled := Toggle(types.SkillConfidenceMap{}, "Rust")
	assert.Equal(t, types.ConfidenceKnow, toggled["Rust"])
}

func TestToggle_UnrecognizedValueBecomesKnow(t *testing.T) {
	toggled := Toggle(types.SkillConfidenceMap{"Java": "expert"}, "Java")
	assert.Equal(t, types.ConfidenceKnow, toggled["Java"])
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 0, Clamp(0))
	assert.Equal(t, 55, Clamp(55))
	assert.Equal(t, 100, Clamp(100))
	assert.Equal(t, 100, Clamp(130))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Excellent", Label(80))
	assert.Equal(t, "Good", Label(79))
	assert.Equal(t, "Good", Label(60))
	assert.Equal(t, "Fair", Label(59))
	assert.Equal(t, "Fair", Label(40))
	assert.Equal(t, "Needs Work", Label(39))
	assert.Equal(t, "Needs Work", Label(0))
}
