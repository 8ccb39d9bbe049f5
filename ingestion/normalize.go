package ingestion

import (
	"math/rand/v2"

	"github.com/poiesic/polingest/tabular"
)

const (
	generatedNameLength = 9
	base36              = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NameGenerator produces a replacement for a blank userName.
type NameGenerator func() string

// RandomName returns a random 9-character base36 token.
// Collisions are improbable, not impossible.
func RandomName() string {
	buf := make([]byte, generatedNameLength)
	for i := range buf {
		buf[i] = base36[rand.IntN(len(base36))]
	}
	return string(buf)
}

// NormalizeRows trims every userName and replaces blank ones with a fresh
// generated name. Rows are modified in place. Returns the number of names
// generated.
func NormalizeRows(rows []tabular.Row, gen NameGenerator) int {
	if gen == nil {
		gen = RandomName
	}
	generated := 0
	for _, row := range rows {
		name := row.Trimmed(ColUserName)
		if name == "" {
			name = gen()
			generated++
		}
		row[ColUserName] = name
	}
	return generated
}
