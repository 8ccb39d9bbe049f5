package ingestion

import "errors"

var (
	// ErrStoreRequired is returned when a run is started without a store.
	ErrStoreRequired = errors.New("store required")

	// ErrNameGeneratorRequired is returned when WithNameGenerator is given nil.
	ErrNameGeneratorRequired = errors.New("name generator required")
)
