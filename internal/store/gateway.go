package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/placement-advisor/internal/normalize"
	"github.com/jonathan/placement-advisor/internal/scoring"
	"github.com/jonathan/placement-advisor/internal/types"
)

// Gateway is the persistence surface for analysis records and the history
// index. Every raw read passes through the normalizer before it is returned.
//
// There is no fatal error path: an unparsable payload reads as absent, and a
// missing or failing backend degrades every operation to a silent no-op or
// empty read. Swallowed backend failures are logged at debug level.
type Gateway struct {
	kv  KV
	log zerolog.Logger
}

// NewGateway creates a Gateway over the given KV. A nil KV is legal and
// yields a gateway whose every operation is a no-op or empty read.
func NewGateway(kv KV, logger zerolog.Logger) *Gateway {
	return &Gateway{kv: kv, log: logger}
}

func (g *Gateway) unavailable() bool {
	return g == nil || g.kv == nil
}

// SaveAnalysis stamps updatedAt and writes the record to its per-id slot and
// the current-analysis slot, then upserts the matching history entry,
// replacing it in place when present, else prepending it.
func (g *Gateway) SaveAnalysis(ctx context.Context, result *types.AnalysisResult) {
	if g.unavailable() || result == nil {
		return
	}

	result.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	g.writeRecord(ctx, result)
	g.upsertHistory(ctx, types.HistoryEntryOf(result))
}

// Current returns the normalized record in the current-analysis slot, nil
// when absent or unparsable.
func (g *Gateway) Current(ctx context.Context) *types.AnalysisResult {
	if g.unavailable() {
		return nil
	}
	return g.readRecord(ctx, KeyCurrent)
}

// Analysis returns the normalized record for id. The current-analysis slot is
// checked first as the cheap path before the dedicated per-id slot.
func (g *Gateway) Analysis(ctx context.Context, id string) *types.AnalysisResult {
	if g.unavailable() || id == "" {
		return nil
	}

	if current := g.Current(ctx); current != nil && current.ID == id {
		return current
	}
	return g.readRecord(ctx, AnalysisKey(id))
}

// History returns the valid entries of the history index, most recent first.
// Structurally invalid elements are filtered out; when any were dropped the
// sticky corruption flag is set for a caller to surface once.
func (g *Gateway) History(ctx context.Context) []types.HistoryEntry {
	if g.unavailable() {
		return []types.HistoryEntry{}
	}

	payload, ok := g.get(ctx, KeyHistory)
	if !ok {
		return []types.HistoryEntry{}
	}

	var raw []any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		g.log.Debug().Err(err).Msg("history index unparsable, reading as empty")
		return []types.HistoryEntry{}
	}

	valid, dropped := validateHistory(raw)
	if dropped > 0 {
		g.log.Debug().Int("dropped", dropped).Msg("filtered corrupted history entries")
		g.set(ctx, KeyCorruption, "true")
	}
	return valid
}

// FullHistory resolves each history entry to its full normalized record,
// skipping ids whose record no longer loads.
func (g *Gateway) FullHistory(ctx context.Context) []*types.AnalysisResult {
	results := make([]*types.AnalysisResult, 0)
	for _, entry := range g.History(ctx) {
		if result := g.Analysis(ctx, entry.ID); result != nil {
			results = append(results, result)
		}
	}
	return results
}

// CorruptionObserved reports whether corrupted history entries were filtered
// since the flag was last cleared.
func (g *Gateway) CorruptionObserved(ctx context.Context) bool {
	if g.unavailable() {
		return false
	}
	value, ok := g.get(ctx, KeyCorruption)
	return ok && value == "true"
}

// ClearCorruptionFlag resets the one-shot corruption warning.
func (g *Gateway) ClearCorruptionFlag(ctx context.Context) {
	if g.unavailable() {
		return
	}
	g.delete(ctx, KeyCorruption)
}

// Delete removes the per-id slot and the matching history entry. Deleting an
// unknown id leaves the index unchanged.
func (g *Gateway) Delete(ctx context.Context, id string) {
	if g.unavailable() || id == "" {
		return
	}

	g.delete(ctx, AnalysisKey(id))

	history := g.History(ctx)
	filtered := make([]types.HistoryEntry, 0, len(history))
	for _, entry := range history {
		if entry.ID != id {
			filtered = append(filtered, entry)
		}
	}
	g.writeHistory(ctx, filtered)
}

// ClearAll removes every stored slot, including the corruption flag and all
// per-id records.
func (g *Gateway) ClearAll(ctx context.Context) {
	if g.unavailable() {
		return
	}

	g.delete(ctx, KeyCurrent)
	g.delete(ctx, KeyHistory)
	g.delete(ctx, KeyCorruption)

	keys, err := g.kv.Keys(ctx, KeyAnalysisPrefix)
	if err != nil {
		g.log.Debug().Err(err).Msg("failed to list analysis slots")
		return
	}
	for _, key := range keys {
		g.delete(ctx, key)
	}
}

// UpdateConfidence replaces the record's confidence map, recomputes the final
// score from the immutable base score, writes the record back to its per-id
// slot (and the current slot when it is also current), and patches only the
// score field of the matching history entry. Returns the new final score and
// whether the record was found.
func (g *Gateway) UpdateConfidence(ctx context.Context, id string, confidence types.SkillConfidenceMap) (int, bool) {
	if g.unavailable() {
		return 0, false
	}

	result := g.Analysis(ctx, id)
	if result == nil {
		return 0, false
	}

	result.SkillConfidenceMap = confidence
	result.FinalScore = scoring.FinalScore(result.BaseScore, confidence)
	result.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	g.writeRecordAt(ctx, AnalysisKey(id), result)
	if current := g.readRecord(ctx, KeyCurrent); current != nil && current.ID == id {
		g.writeRecordAt(ctx, KeyCurrent, result)
	}

	history := g.History(ctx)
	for i := range history {
		if history[i].ID == id {
			history[i].ReadinessScore = result.FinalScore
		}
	}
	g.writeHistory(ctx, history)

	return result.FinalScore, true
}

func (g *Gateway) readRecord(ctx context.Context, key string) *types.AnalysisResult {
	payload, ok := g.get(ctx, key)
	if !ok {
		return nil
	}
	return normalize.JSON([]byte(payload))
}

func (g *Gateway) writeRecord(ctx context.Context, result *types.AnalysisResult) {
	g.writeRecordAt(ctx, AnalysisKey(result.ID), result)
	g.writeRecordAt(ctx, KeyCurrent, result)
}

func (g *Gateway) writeRecordAt(ctx context.Context, key string, result *types.AnalysisResult) {
	encoded, err := json.Marshal(result)
	if err != nil {
		g.log.Debug().Err(err).Str("key", key).Msg("failed to marshal record")
		return
	}
	g.set(ctx, key, string(encoded))
}

func (g *Gateway) upsertHistory(ctx context.Context, entry types.HistoryEntry) {
	history := g.History(ctx)
	replaced := false
	for i := range history {
		if history[i].ID == entry.ID {
			history[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		history = append([]types.HistoryEntry{entry}, history...)
	}
	g.writeHistory(ctx, history)
}

func (g *Gateway) writeHistory(ctx context.Context, history []types.HistoryEntry) {
	encoded, err := json.Marshal(history)
	if err != nil {
		g.log.Debug().Err(err).Msg("failed to marshal history index")
		return
	}
	g.set(ctx, KeyHistory, string(encoded))
}

func (g *Gateway) get(ctx context.Context, key string) (string, bool) {
	value, ok, err := g.kv.Get(ctx, key)
	if err != nil {
		g.log.Debug().Err(err).Str("key", key).Msg("storage read failed, treating as absent")
		return "", false
	}
	return value, ok
}

func (g *Gateway) set(ctx context.Context, key, value string) {
	if err := g.kv.Set(ctx, key, value); err != nil {
		g.log.Debug().Err(err).Str("key", key).Msg("storage write failed")
	}
}

func (g *Gateway) delete(ctx context.Context, key string) {
	if err := g.kv.Delete(ctx, key); err != nil {
		g.log.Debug().Err(err).Str("key", key).Msg("storage delete failed")
	}
}
