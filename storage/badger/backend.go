// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/polingest/storage"
)

const (
	defaultSequenceBandwidth = 100
)

// Backend wraps a BadgerDB instance and provides low-level operations.
// It is shared by every store session opened on it.
type Backend struct {
	db     *badger.DB
	logger *slog.Logger

	mu        sync.Mutex
	sequences map[string]*badger.Sequence
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenBackend opens a BadgerDB database at the specified path.
// Creates the directory if it doesn't exist.
func OpenBackend(filePath string, inMemory bool) (*Backend, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// Ensure directory exists
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Backend{
		db:        db,
		logger:    slog.Default(),
		sequences: make(map[string]*badger.Sequence),
	}, nil
}

// Close releases the ID sequences and closes the BadgerDB database.
func (b *Backend) Close() error {
	b.mu.Lock()
	var errs []error
	for name, seq := range b.sequences {
		if err := seq.Release(); err != nil {
			errs = append(errs, fmt.Errorf("release sequence %s: %w", name, err))
		}
	}
	b.sequences = make(map[string]*badger.Sequence)
	b.mu.Unlock()

	errs = append(errs, b.db.Close())
	return errors.Join(errs...)
}

// IsClosed returns true if the database is closed.
func (b *Backend) IsClosed() bool {
	return b.db.IsClosed()
}

// WithTx executes a function within a BadgerDB transaction.
// If isWrite is true, creates a read-write transaction.
// The transaction is automatically discarded if fn returns an error.
func (b *Backend) WithTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	if b.db.IsClosed() {
		return storage.ErrStorageClosed
	}
	tx := b.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}

// WithBatch executes fn against a BadgerDB write batch and flushes it.
// The batch commits in as many transactions as its size needs, so writes
// are not atomic as a whole; the batch is cancelled if fn returns an error.
func (b *Backend) WithBatch(fn func(wb *badger.WriteBatch) error) error {
	if b.db.IsClosed() {
		return storage.ErrStorageClosed
	}
	wb := b.db.NewWriteBatch()
	defer wb.Cancel()
	if err := fn(wb); err != nil {
		return err
	}
	return wb.Flush()
}

// Sequence returns the BadgerDB sequence for generating sequential IDs.
// Sequences are leased once per backend and shared by all sessions: two
// leases on the same key would hand out overlapping ranges after a release.
func (b *Backend) Sequence(name string) (*badger.Sequence, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if seq, ok := b.sequences[name]; ok {
		return seq, nil
	}
	seq, err := b.db.GetSequence([]byte(name), defaultSequenceBandwidth)
	if err != nil {
		return nil, err
	}
	b.sequences[name] = seq
	return seq, nil
}

// Connector returns a storage.Connector that opens a new store session on
// this backend for every call.
func (b *Backend) Connector() storage.Connector {
	return storage.ConnectorFunc(func(ctx context.Context) (storage.Store, error) {
		if b.IsClosed() {
			return nil, storage.ErrStorageClosed
		}
		return NewStore(b)
	})
}
