// Package scoring computes readiness scores from extracted skills and the
// user's per-skill confidence map.
package scoring

import (
	"strings"

	"github.com/jonathan/placement-advisor/internal/types"
)

const (
	// MinScore and MaxScore bound every score this package produces.
	MinScore = 0
	MaxScore = 100

	baseFloor        = 35
	categoryBonus    = 5
	categoryBonusCap = 30
	contextBonus     = 10
	longJDThreshold  = 800

	// confidenceStep is the per-skill adjustment applied to the base score:
	// +2 for a skill marked "know", -2 otherwise.
	confidenceStep = 2
)

// BaseScore computes the immutable base readiness score for an analysis.
// It runs exactly once, at creation time, and is never re-derived from a
// stored record.
//
// Every non-empty category counts toward the bonus, including the "other"
// fallback category, so a fallback-only extraction scores 40 rather than 35.
func BaseScore(skills types.ExtractedSkills, company, role string, jdLength int) int {
	score := baseFloor

	bonus := len(skills.Categories()) * categoryBonus
	if bonus > categoryBonusCap {
		bonus = categoryBonusCap
	}
	score += bonus

	if notBlank(company) {
		score += contextBonus
	}
	if notBlank(role) {
		score += contextBonus
	}
	if jdLength > longJDThreshold {
		score += contextBonus
	}

	return Clamp(score)
}

// FinalScore derives the current readiness score from the base score and the
// confidence map. The whole map is walked on every call rather than applying
// an incremental delta, so an interrupted intermediate write can never leave
// the score drifted.
func FinalScore(baseScore int, confidence types.SkillConfidenceMap) int {
	adjustment := 0
	for _, tag := range confidence {
		if tag == types.ConfidenceKnow {
			adjustment += confidenceStep
		} else {
			// Unrecognized values read as "practice".
			adjustment -= confidenceStep
		}
	}
	return Clamp(baseScore + adjustment)
}

// Toggle returns a copy of the confidence map with the named skill flipped
// between "practice" and "know". A skill never visits a third state: any
// unrecognized stored value flips to "know" the way "practice" does.
func Toggle(confidence types.SkillConfidenceMap, skill string) types.SkillConfidenceMap {
	toggled := confidence.Clone()
	if toggled[skill] == types.ConfidenceKnow {
		toggled[skill] = types.ConfidencePractice
	} else {
		toggled[skill] = types.ConfidenceKnow
	}
	return toggled
}

// Clamp bounds a score to [MinScore, MaxScore].
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// Label buckets a score into a human-readable readiness label.
func Label(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Work"
	}
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
