// Package normalize is the trust boundary between raw persisted bytes and
// records the rest of the system can assume are well-formed. Every read from
// storage passes through here; no other package coerces persisted data.
package normalize

import (
	"encoding/json"
	"strconv"

	"github.com/jonathan/placement-advisor/internal/extract"
	"github.com/jonathan/placement-advisor/internal/scoring"
	"github.com/jonathan/placement-advisor/internal/types"
)

// defaultScore replaces a missing or wrong-typed numeric score.
const defaultScore = 50

// JSON normalizes a raw persisted payload. Unparsable or non-object payloads
// normalize to nil; callers treat nil as "not found", never as an error.
func JSON(data []byte) *types.AnalysisResult {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	return Record(obj)
}

// Record validates and repairs a decoded record against the canonical schema.
//
// Only id and createdAt are load-bearing: a record missing either is rejected
// with nil. Every other field gets a typed default when absent, wrong-typed or
// structurally invalid. The extractor's never-all-empty fallback is re-applied
// to the skills, and finalScore is always recomputed from baseScore and the
// repaired confidence map; a stored finalScore is never trusted.
//
// Idempotent: normalizing an already-normalized record returns an equal record.
func Record(raw map[string]any) *types.AnalysisResult {
	id := identityString(raw["id"])
	createdAt := identityString(raw["createdAt"])
	if id == "" || createdAt == "" {
		return nil
	}

	updatedAt := stringOr(raw["updatedAt"], createdAt)

	result := &types.AnalysisResult{
		ID:        id,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,

		Company: stringOr(raw["company"], ""),
		Role:    stringOr(raw["role"], ""),
		JDText:  stringOr(raw["jdText"], ""),

		ExtractedSkills: normalizeSkills(raw["extractedSkills"]),
		RoundMapping:    decodeSliceOr(raw["roundMapping"], DefaultRoundMapping()),
		Checklist:       decodeSliceOr(raw["checklist"], DefaultChecklist()),
		Plan7Days:       decodeSliceOr(raw["plan7Days"], DefaultPlan()),
		Questions:       decodeSliceOr(raw["questions"], DefaultQuestions()),
		CompanyIntel:    normalizeIntel(raw["companyIntel"]),

		BaseScore:          intOr(raw["baseScore"], defaultScore),
		SkillConfidenceMap: normalizeConfidence(raw["skillConfidenceMap"]),
	}

	if result.ExtractedSkills.IsEmpty() {
		result.ExtractedSkills = extract.FallbackSkills()
	}

	result.FinalScore = scoring.FinalScore(result.BaseScore, result.SkillConfidenceMap)

	return result
}

// identityString coerces an identity field. Strings pass through; integral
// numbers stringify (legacy records used epoch-millisecond ids stored as
// numbers). Empty and zero values read as missing.
func identityString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		if value == 0 {
			return ""
		}
		return strconv.FormatInt(int64(value), 10)
	}
	return ""
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func intOr(v any, fallback int) int {
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return fallback
}

// decodeSliceOr re-decodes a raw array into its typed slice, falling back to
// the canonical default when the value is missing, not an array, or any
// element fails to decode.
func decodeSliceOr[T any](v any, fallback []T) []T {
	arr, ok := v.([]any)
	if !ok {
		return fallback
	}
	encoded, err := json.Marshal(arr)
	if err != nil {
		return fallback
	}
	var decoded []T
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return fallback
	}
	if decoded == nil {
		decoded = []T{}
	}
	return decoded
}

// normalizeSkills rebuilds the skill categories, tolerating the legacy
// "cloudDevOps" spelling of the cloud category.
func normalizeSkills(v any) types.ExtractedSkills {
	obj, ok := v.(map[string]any)
	if !ok {
		return extract.FallbackSkills()
	}

	cloud := stringSlice(obj["cloud"])
	if _, present := obj["cloud"]; !present {
		cloud = stringSlice(obj["cloudDevOps"])
	}

	return types.ExtractedSkills{
		CoreCS:    stringSlice(obj["coreCS"]),
		Languages: stringSlice(obj["languages"]),
		Web:       stringSlice(obj["web"]),
		Data:      stringSlice(obj["data"]),
		Cloud:     cloud,
		Testing:   stringSlice(obj["testing"]),
		Other:     stringSlice(obj["other"]),
	}
}

// stringSlice keeps the string elements of a raw array, dropping anything
// else. Missing or wrong-typed values become an empty category.
func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, element := range arr {
		if s, ok := element.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// normalizeConfidence keeps recognized confidence tags and coerces everything
// else to the safe default "practice".
func normalizeConfidence(v any) types.SkillConfidenceMap {
	obj, ok := v.(map[string]any)
	if !ok {
		return types.SkillConfidenceMap{}
	}
	normalized := make(types.SkillConfidenceMap, len(obj))
	for skill, confidence := range obj {
		if tag, ok := confidence.(string); ok && types.SkillConfidence(tag) == types.ConfidenceKnow {
			normalized[skill] = types.ConfidenceKnow
		} else {
			normalized[skill] = types.ConfidencePractice
		}
	}
	return normalized
}

func normalizeIntel(v any) *types.CompanyIntel {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	encoded, err := json.Marshal(obj)
	if err != nil {
		return nil
	}
	var intel types.CompanyIntel
	if err := json.Unmarshal(encoded, &intel); err != nil {
		return nil
	}
	return &intel
}
