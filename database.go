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


package polingest

import (
	"log/slog"

	"github.com/poiesic/polingest/ingestion"
	"github.com/poiesic/polingest/jobs"
	"github.com/poiesic/polingest/search"
	"github.com/poiesic/polingest/storage"
	"github.com/poiesic/polingest/storage/badger"
)

type Database struct {
	backend *badger.Backend
	store   storage.Store // shared session for reads
	logger  *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory bool
	logger   *slog.Logger
}

// WithInMemory keeps all data in memory. The file path is ignored.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Open read session
	store, err := badger.NewStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Database{
		backend: backend,
		store:   store,
		logger:  options.logger,
	}, nil
}

// Close closes the read session and the backend. Executors created from
// the database must be released first.
func (db *Database) Close() error {
	if err := db.store.Close(); err != nil {
		db.logger.Error("error closing store", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Store returns the shared read session.
func (db *Database) Store() storage.Store {
	return db.store
}

// Connector opens a new storage session per call.
func (db *Database) Connector() storage.Connector {
	return db.backend.Connector()
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(append([]ingestion.Option{ingestion.WithLogger(db.logger)}, opts...)...)
}

// NewExecutor creates a background executor whose jobs each open their own
// session on this database.
func (db *Database) NewExecutor(opts ...jobs.Option) (*jobs.Executor, error) {
	return jobs.NewExecutor(db.Connector(), append([]jobs.Option{jobs.WithLogger(db.logger)}, opts...)...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.store, append([]search.Option{search.WithLogger(db.logger)}, opts...)...)
}
