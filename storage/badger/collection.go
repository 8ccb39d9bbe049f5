package badger

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/storage"
)

const (
	// maxUpsertAttempts bounds retries of an upsert transaction that lost a
	// write conflict to a concurrent session.
	maxUpsertAttempts = 3
	// upsertChunkSize is the number of records per upsert transaction, well
	// below badger's per-transaction entry limit.
	upsertChunkSize = 1000
)

// writer is the write side shared by badger.Txn and badger.WriteBatch.
type writer interface {
	Set(key, val []byte) error
}

// refIndex describes a secondary index from a referenced ID to documents.
type refIndex[T core.Document] struct {
	prefix string
	ref    func(T) core.ID
}

// collection implements storage.EntityRepository for one document type.
type collection[T core.Document] struct {
	session    *store
	name       string
	prefix     string
	keyPrefix  string // natural-key index, empty for unkeyed documents
	naturalKey func(T) string
	seq        *badger.Sequence
	marshal    func(T) []byte
	unmarshal  func([]byte) (T, error)
	validate   func(T) error
	refs       []refIndex[T]
}

func (c *collection[T]) backend() *Backend {
	return c.session.backend
}

func (c *collection[T]) ready() error {
	if c.session.closed.Load() {
		return storage.ErrSessionClosed
	}
	if c.backend().IsClosed() {
		return storage.ErrStorageClosed
	}
	return nil
}

// nextID returns the next ID from the collection sequence.
func (c *collection[T]) nextID() (core.ID, error) {
	nextID, err := c.seq.Next()
	if err != nil {
		return 0, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if nextID == 0 {
		nextID, err = c.seq.Next()
		if err != nil {
			return 0, err
		}
	}
	return core.ID(nextID), nil
}

// insert writes one new document and its index entries.
func (c *collection[T]) insert(tx writer, doc T, now time.Time) error {
	id, err := c.nextID()
	if err != nil {
		return err
	}
	meta := doc.Base()
	meta.Id = id
	meta.CreatedDate = now
	meta.UpdatedDate = time.Time{}

	if err := tx.Set(makeRecordKey(c.prefix, id), c.marshal(doc)); err != nil {
		return err
	}
	if c.keyPrefix != "" {
		if err := tx.Set(makeNaturalKey(c.keyPrefix, c.naturalKey(doc)), storage.MarshalID(id)); err != nil {
			return err
		}
	}
	for _, ix := range c.refs {
		refID := ix.ref(doc)
		if refID == 0 {
			continue
		}
		if err := tx.Set(makeRefKey(ix.prefix, refID, id), nil); err != nil {
			return err
		}
	}
	return nil
}

func (c *collection[T]) validateAll(records []T) error {
	for i, record := range records {
		if err := c.validate(record); err != nil {
			return fmt.Errorf("%w: %s record %d: %w", storage.ErrBulkInsert, c.name, i, err)
		}
	}
	return nil
}

// resetMeta clears identifiers handed out by a transaction that never committed.
func resetMeta[T core.Document](records []T) {
	for _, record := range records {
		meta := record.Base()
		meta.Id = 0
		meta.CreatedDate = time.Time{}
	}
}

// Add persists records as one batch. Every record is validated before
// anything is written, so a constraint violation rejects the whole batch.
// The write itself goes through a write batch and is not bounded by the
// size of a single transaction.
func (c *collection[T]) Add(ctx context.Context, records ...T) ([]T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}
	if err := c.validateAll(records); err != nil {
		return nil, err
	}

	err := c.backend().WithBatch(func(wb *badger.WriteBatch) error {
		now := time.Now().UTC()
		for _, record := range records {
			if err := c.insert(wb, record, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		resetMeta(records)
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrBulkInsert, c.name, err)
	}
	return records, nil
}

// Get retrieves a single document by ID.
func (c *collection[T]) Get(ctx context.Context, id core.ID) (T, error) {
	var result T
	if err := c.ready(); err != nil {
		return result, err
	}
	err := c.backend().WithTx(func(tx *badger.Txn) error {
		doc, found, err := c.read(tx, id)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrNotFound
		}
		result = doc
		return nil
	}, false)
	return result, err
}

// GetMany retrieves the documents that exist among ids, in the order given.
func (c *collection[T]) GetMany(ctx context.Context, ids ...core.ID) ([]T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var result []T
	err := c.backend().WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			doc, found, err := c.read(tx, id)
			if err != nil {
				return err
			}
			if found {
				result = append(result, doc)
			}
		}
		return nil
	}, false)
	return result, err
}

// Count returns the number of stored documents.
func (c *collection[T]) Count(ctx context.Context) (int, error) {
	if err := c.ready(); err != nil {
		return 0, err
	}
	count := 0
	err := c.backend().WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makePrefix(c.prefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Upsert inserts documents whose natural key is new and reuses stored ones.
// Records are validated up front and written in chunks, one transaction each.
func (c *collection[T]) Upsert(ctx context.Context, records ...T) ([]T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}
	if err := c.validateAll(records); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	seen := make(map[string]T, len(records))
	for start := 0; start < len(records); start += upsertChunkSize {
		chunk := records[start:min(start+upsertChunkSize, len(records))]
		got, err := c.upsertChunk(chunk, seen)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", storage.ErrBulkInsert, c.name, err)
		}
		out = append(out, got...)
	}
	return out, nil
}

// upsertChunk writes one chunk, retrying on write conflicts. seen carries
// the natural keys settled by earlier chunks and is extended on success.
func (c *collection[T]) upsertChunk(chunk []T, seen map[string]T) ([]T, error) {
	var (
		out   []T
		added map[string]T
		err   error
	)
	for attempt := 1; attempt <= maxUpsertAttempts; attempt++ {
		out, added, err = c.upsertOnce(chunk, seen)
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
		resetMeta(chunk)
		c.session.logger.Debug("upsert conflict, retrying", "collection", c.name, "attempt", attempt)
	}
	if err != nil {
		resetMeta(chunk)
		return nil, err
	}
	maps.Copy(seen, added)
	return out, nil
}

func (c *collection[T]) upsertOnce(chunk []T, seen map[string]T) ([]T, map[string]T, error) {
	out := make([]T, len(chunk))
	added := make(map[string]T, len(chunk))
	err := c.backend().WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for i, record := range chunk {
			key := c.naturalKey(record)
			if prior, ok := seen[key]; ok {
				out[i] = prior
				continue
			}
			if prior, ok := added[key]; ok {
				out[i] = prior
				continue
			}
			existing, found, err := c.lookup(tx, key)
			if err != nil {
				return err
			}
			if found {
				out[i] = existing
				added[key] = existing
				continue
			}
			if err := c.insert(tx, record, now); err != nil {
				return err
			}
			out[i] = record
			added[key] = record
		}
		return tx.Commit()
	}, true)
	return out, added, err
}

// FindByKey retrieves the document the natural-key index points at.
func (c *collection[T]) FindByKey(ctx context.Context, key string) (T, error) {
	var result T
	if err := c.ready(); err != nil {
		return result, err
	}
	err := c.backend().WithTx(func(tx *badger.Txn) error {
		doc, found, err := c.lookup(tx, key)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrNotFound
		}
		result = doc
		return nil
	}, false)
	return result, err
}

// byRef retrieves documents listed under refID in a reference index.
func (c *collection[T]) byRef(ctx context.Context, prefix string, refID core.ID) ([]T, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	var result []T
	err := c.backend().WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makePartialRefKey(prefix, refID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		var ids []core.ID
		for iter.Rewind(); iter.Valid(); iter.Next() {
			ids = append(ids, idFromRefKey(iter.Item().Key()))
		}
		for _, id := range ids {
			doc, found, err := c.read(tx, id)
			if err != nil {
				return err
			}
			if found {
				result = append(result, doc)
			}
		}
		return nil
	}, false)
	return result, err
}

// Helper methods

// lookup resolves a natural key through the index.
func (c *collection[T]) lookup(tx *badger.Txn, key string) (T, bool, error) {
	var zero T
	item, err := tx.Get(makeNaturalKey(c.keyPrefix, key))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return zero, false, nil
		}
		return zero, false, err
	}

	var id core.ID
	err = item.Value(func(val []byte) error {
		id, err = storage.UnmarshalID(val)
		return err
	})
	if err != nil {
		return zero, false, err
	}
	return c.read(tx, id)
}

// read reads a document from the transaction.
func (c *collection[T]) read(tx *badger.Txn, id core.ID) (T, bool, error) {
	var doc T
	item, err := tx.Get(makeRecordKey(c.prefix, id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return doc, false, nil
		}
		return doc, false, err
	}
	err = item.Value(func(val []byte) error {
		var err error
		doc, err = c.unmarshal(val)
		return err
	})
	if err != nil {
		return doc, false, err
	}
	return doc, true, nil
}
