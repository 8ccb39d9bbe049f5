package badger

import (
	"encoding/binary"

	"github.com/poiesic/polingest/core"
)

// Collection prefixes. Every key is "<prefix>:<...>"; no prefix is a prefix
// of another once the separator is appended.
const (
	agentPrefix       = "agt"
	agentKeyPrefix    = "agtkey"
	agentIDSeq        = "agtseq"
	carrierPrefix     = "car"
	carrierKeyPrefix  = "carkey"
	carrierIDSeq      = "carseq"
	lobPrefix         = "lob"
	lobKeyPrefix      = "lobkey"
	lobIDSeq          = "lobseq"
	userPrefix        = "usr"
	userKeyPrefix     = "usrkey"
	userIDSeq         = "usrseq"
	accountPrefix     = "acc"
	accountUserPrefix = "accusr"
	accountIDSeq      = "accseq"
	policyPrefix      = "pol"
	policyUserPrefix  = "polusr"
	policyIDSeq       = "polseq"
	jobPrefix         = "job"
	keySeparator      = ':'
	idSize            = 8
)

// makePrefix returns "<prefix>:".
func makePrefix(prefix string) []byte {
	buf := make([]byte, 0, len(prefix)+1)
	buf = append(buf, prefix...)
	return append(buf, keySeparator)
}

// makeRecordKey generates a key for a document by ID.
// Format: prefix:id (big endian so iteration follows insertion order)
func makeRecordKey(prefix string, id core.ID) []byte {
	buf := makePrefix(prefix)
	return binary.BigEndian.AppendUint64(buf, uint64(id))
}

// makeNaturalKey generates the natural-key index key.
// Format: prefix:key
func makeNaturalKey(prefix, key string) []byte {
	return append(makePrefix(prefix), key...)
}

// makeRefKey generates a composite key for a reference index.
// Format: prefix:refID:id
func makeRefKey(prefix string, refID, id core.ID) []byte {
	buf := makePartialRefKey(prefix, refID)
	return binary.BigEndian.AppendUint64(buf, uint64(id))
}

// makePartialRefKey generates a partial key for reference queries.
// Format: prefix:refID
func makePartialRefKey(prefix string, refID core.ID) []byte {
	buf := makePrefix(prefix)
	return binary.BigEndian.AppendUint64(buf, uint64(refID))
}

// idFromRefKey extracts the trailing document ID of a reference key.
func idFromRefKey(key []byte) core.ID {
	if len(key) < idSize {
		return 0
	}
	return core.ID(binary.BigEndian.Uint64(key[len(key)-idSize:]))
}

// makeJobKey generates a key for a job status record.
func makeJobKey(id string) []byte {
	return append(makePrefix(jobPrefix), id...)
}
