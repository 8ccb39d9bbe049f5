package ingestion

import "github.com/poiesic/polingest/core"

// References maps natural keys to generated IDs, one map per entity type.
// They live for one run only.
type References struct {
	Agents   map[string]core.ID
	Users    map[string]core.ID
	Carriers map[string]core.ID
	Lobs     map[string]core.ID
}

// Resolve builds the lookup maps from persisted entities in a single pass
// over each list. Records without an ID are skipped.
func Resolve(persisted *Entities) *References {
	return &References{
		Agents:   keyMap(persisted.Agents),
		Users:    keyMap(persisted.Users),
		Carriers: keyMap(persisted.Carriers),
		Lobs:     keyMap(persisted.Lobs),
	}
}

func keyMap[T core.Keyed](records []T) map[string]core.ID {
	m := make(map[string]core.ID, len(records))
	for _, record := range records {
		if id := record.Base().Id; id != 0 {
			m[record.NaturalKey()] = id
		}
	}
	return m
}
