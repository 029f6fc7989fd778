package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-advisor/internal/extract"
	"github.com/jonathan/placement-advisor/internal/types"
)

func TestJSON_UnparsablePayload(t *testing.T) {
	assert.Nil(t, JSON([]byte("{not json")))
	assert.Nil(t, JSON([]byte("")))
}

func TestJSON_NonObjectPayload(t *testing.T) {
	assert.Nil(t, JSON([]byte(`"a string"`)))
	assert.Nil(t, JSON([]byte(`[1, 2, 3]`)))
	assert.Nil(t, JSON([]byte(`42`)))
}

func TestRecord_RejectsMissingIdentity(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"no id", map[string]any{"createdAt": "2026-01-01T00:00:00Z"}},
		{"no createdAt", map[string]any{"id": "a1"}},
		{"empty id", map[string]any{"id": "", "createdAt": "2026-01-01T00:00:00Z"}},
		{"wrong-typed id", map[string]any{"id": true, "createdAt": "2026-01-01T00:00:00Z"}},
		{"empty object", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Record(tt.raw))
		})
	}
}

func TestRecord_LegacyNumericIDStringifies(t *testing.T) {
	// Old records stored epoch-millisecond ids as numbers.
	result := Record(map[string]any{
		"id":        float64(1700000000000),
		"createdAt": "2026-01-01T00:00:00Z",
	})

	require.NotNil(t, result)
	assert.Equal(t, "1700000000000", result.ID)
}

func TestRecord_BareRecordGetsDefaults(t *testing.T) {
	result := Record(map[string]any{
		"id":        "a1",
		"createdAt": "2026-01-01T00:00:00Z",
	})
	require.NotNil(t, result)

	assert.Equal(t, "a1", result.ID)
	assert.Equal(t, "2026-01-01T00:00:00Z", result.CreatedAt)
	assert.Equal(t, result.CreatedAt, result.UpdatedAt)
	assert.Empty(t, result.Company)
	assert.Empty(t, result.Role)

	// Absent structures fall back to canonical defaults.
	assert.Equal(t, extract.FallbackSkills(), result.ExtractedSkills)
	assert.Equal(t, DefaultRoundMapping(), result.RoundMapping)
	assert.Equal(t, DefaultChecklist(), result.Checklist)
	assert.Equal(t, DefaultPlan(), result.Plan7Days)
	assert.Equal(t, DefaultQuestions(), result.Questions)
	assert.Nil(t, result.CompanyIntel)

	// Default base 50, empty confidence map, so finalScore equals base.
	assert.Equal(t, 50, result.BaseScore)
	assert.Empty(t, result.SkillConfidenceMap)
	assert.Equal(t, 50, result.FinalScore)
}

func TestRecord_FinalScoreAlwaysRecomputed(t *testing.T) {
	result := Record(map[string]any{
		"id":         "a1",
		"createdAt":  "2026-01-01T00:00:00Z",
		"baseScore":  float64(60),
		"finalScore": float64(99),
		"skillConfidenceMap": map[string]any{
			"Java":   "know",
			"Python": "practice",
		},
	})
	require.NotNil(t, result)

	// The stored finalScore of 99 is ignored: 60 + 2 - 2.
	assert.Equal(t, 60, result.FinalScore)
}

func TestRecord_ConfidenceCoercion(t *testing.T) {
	result := Record(map[string]any{
		"id":        "a1",
		"createdAt": "2026-01-01T00:00:00Z",
		"skillConfidenceMap": map[string]any{
			"Java":   "know",
			"Python": "expert",
			"React":  float64(3),
		},
	})
	require.NotNil(t, result)

	assert.Equal(t, types.ConfidenceKnow, result.SkillConfidenceMap["Java"])
	assert.Equal(t, types.ConfidencePractice, result.SkillConfidenceMap["Python"])
	assert.Equal(t, types.ConfidencePractice, result.SkillConfidenceMap["React"])
}

func TestRecord_LegacyCloudDevOpsAlias(t *testing.T) {
	result := Record(map[string]any{
		"id":        "a1",
		"createdAt": "2026-01-01T00:00:00Z",
		"extractedSkills": map[string]any{
			"languages":   []any{"Java"},
			"cloudDevOps": []any{"AWS", "Docker"},
		},
	})
	require.NotNil(t, result)

	assert.Equal(t, []string{"AWS", "Docker"}, result.ExtractedSkills.Cloud)

	// The alias is ignored when the canonical key is present.
	both := Record(map[string]any{
		"id":        "a1",
		"createdAt": "2026-01-01T00:00:00Z",
		"extractedSkills": map[string]any{
			"cloud":       []any{"GCP"},
			"cloudDevOps": []any{"AWS"},
		},
	})
	require.NotNil(t, both)
	assert.Equal(t, []string{"GCP"}, both.ExtractedSkills.Cloud)
}

func TestRecord_SkillSlicesDropNonStrings(t *testing.T) {
	result := Record(map[string]any{
		"id":        "a1",
		"createdAt": "2026-01-01T00:00:00Z",
		"extractedSkills": map[string]any{
			"languages": []any{"Java", float64(7), true, "Python"},
		},
	})
	require.NotNil(t, result)

	assert.Equal(t, []string{"Java", "Python"}, result.ExtractedSkills.Languages)
}

func TestRecord_EmptySkillsGetFallback(t *testing.T) {
	result := Record(map[string]any{
		"id":        "a1",
		"createdAt": "2026-01-01T00:00:00Z",
		"extractedSkills": map[string]any{
			"languages": []any{},
		},
	})
	require.NotNil(t, result)

	assert.Equal(t, extract.FallbackSkills(), result.ExtractedSkills)
}

func TestRecord_MalformedDerivedSlicesFallBack(t *testing.T) {
	result := Record(map[string]any{
		"id":        "a1",
		"createdAt": "2026-01-01T00:00:00Z",
		"plan7Days": "not an array",
		"questions": []any{"valid question", float64(1)},
		"roundMapping": []any{
			map[string]any{"round": "one"},
		},
	})
	require.NotNil(t, result)

	assert.Equal(t, DefaultPlan(), result.Plan7Days)
	// Any element failing to decode falls back wholesale.
	assert.Equal(t, DefaultQuestions(), result.Questions)
	assert.Equal(t, DefaultRoundMapping(), result.RoundMapping)
}

func TestRecord_PreservesWellFormedInput(t *testing.T) {
	raw := map[string]any{
		"id":        "a1",
		"createdAt": "2026-01-01T00:00:00Z",
		"updatedAt": "2026-01-02T00:00:00Z",
		"company":   "Acme",
		"role":      "SDE",
		"jdText":    "some long jd",
		"extractedSkills": map[string]any{
			"coreCS":    []any{"DSA"},
			"languages": []any{"Java"},
		},
		"questions": []any{"q1", "q2"},
		"baseScore": float64(75),
		"skillConfidenceMap": map[string]any{
			"DSA":  "know",
			"Java": "know",
		},
		"companyIntel": map[string]any{
			"name":     "Acme",
			"industry": "Technology Services",
			"size":     "startup",
		},
	}

	result := Record(raw)
	require.NotNil(t, result)

	assert.Equal(t, "Acme", result.Company)
	assert.Equal(t, "2026-01-02T00:00:00Z", result.UpdatedAt)
	assert.Equal(t, []string{"DSA"}, result.ExtractedSkills.CoreCS)
	assert.Equal(t, []string{"q1", "q2"}, result.Questions)
	assert.Equal(t, 75, result.BaseScore)
	assert.Equal(t, 79, result.FinalScore)
	require.NotNil(t, result.CompanyIntel)
	assert.Equal(t, types.SizeStartup, result.CompanyIntel.Size)
}

func TestRecord_Idempotent(t *testing.T) {
	first := Record(map[string]any{
		"id":        "a1",
		"createdAt": "2026-01-01T00:00:00Z",
		"company":   "Acme",
		"baseScore": float64(60),
		"skillConfidenceMap": map[string]any{
			"Java": "know",
		},
	})
	require.NotNil(t, first)

	// Round-trip the normalized record through JSON and normalize again.
	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	second := JSON(encoded)
	require.NotNil(t, second)
	assert.Equal(t, first, second)
}
