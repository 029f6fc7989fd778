package store

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/placement-advisor/internal/types"
)

// historyEntrySchema is the structural contract for one history index
// element. Entries failing it are silently dropped and counted as corruption.
const historyEntrySchema = `{
	"type": "object",
	"required": ["id", "createdAt", "company", "role", "readinessScore"],
	"properties": {
		"id":             {"type": "string"},
		"createdAt":      {"type": "string"},
		"company":        {"type": "string"},
		"role":           {"type": "string"},
		"readinessScore": {"type": "number"}
	}
}`

var compiledHistorySchema = mustCompileHistorySchema()

func mustCompileHistorySchema() *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(historyEntrySchema))
	if err != nil {
		panic("store: invalid history entry schema: " + err.Error())
	}
	return schema
}

// validateHistory splits a raw decoded history index into structurally valid
// entries and a count of dropped ones.
func validateHistory(raw []any) (valid []types.HistoryEntry, dropped int) {
	valid = make([]types.HistoryEntry, 0, len(raw))
	for _, element := range raw {
		entry, ok := validHistoryEntry(element)
		if !ok {
			dropped++
			continue
		}
		valid = append(valid, entry)
	}
	return valid, dropped
}

func validHistoryEntry(element any) (types.HistoryEntry, bool) {
	result, err := compiledHistorySchema.Validate(gojsonschema.NewGoLoader(element))
	if err != nil || !result.Valid() {
		return types.HistoryEntry{}, false
	}

	encoded, err := json.Marshal(element)
	if err != nil {
		return types.HistoryEntry{}, false
	}
	var entry types.HistoryEntry
	if err := json.Unmarshal(encoded, &entry); err != nil {
		return types.HistoryEntry{}, false
	}
	return entry, true
}
