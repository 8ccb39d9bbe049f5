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


package storage

import (
	"context"

	"github.com/poiesic/polingest/core"
)

// EntityRepository stores one collection of documents.
type EntityRepository[T core.Document] interface {
	// Add persists records as a single batch.
	// Every record is validated first; any violation rejects the whole batch
	// with ErrBulkInsert and nothing is written.
	// Generates IDs from a sequence and sets CreatedDate.
	// Returns the records in input order with IDs populated.
	Add(ctx context.Context, records ...T) ([]T, error)

	// Get retrieves a single record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	Get(ctx context.Context, id core.ID) (T, error)

	// GetMany retrieves multiple records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetMany(ctx context.Context, ids ...core.ID) ([]T, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

// KeyedRepository stores documents identified by a natural key.
type KeyedRepository[T core.Keyed] interface {
	EntityRepository[T]

	// Upsert persists records whose natural key is not stored yet and reuses
	// the stored record otherwise, all inside one transaction.
	// Returns records in input order; reused records carry the stored ID and dates.
	Upsert(ctx context.Context, records ...T) ([]T, error)

	// FindByKey retrieves the most recently added record with the natural key.
	// Returns ErrNotFound if no record carries the key.
	FindByKey(ctx context.Context, key string) (T, error)
}

// AccountRepository stores user accounts.
type AccountRepository interface {
	EntityRepository[*core.UserAccount]

	// GetAccountsByUser retrieves the accounts referencing a user, in insertion order.
	GetAccountsByUser(ctx context.Context, userID core.ID) ([]*core.UserAccount, error)
}

// PolicyRepository stores policies.
type PolicyRepository interface {
	EntityRepository[*core.Policy]

	// GetPoliciesByUser retrieves the policies referencing a user, in insertion order.
	GetPoliciesByUser(ctx context.Context, userID core.ID) ([]*core.Policy, error)
}

// JobRepository persists ingestion job status records.
type JobRepository interface {
	// SaveJob creates or replaces the job record.
	SaveJob(ctx context.Context, job *core.Job) error

	// LoadJob retrieves a job record.
	// Returns ErrNotFound if the job doesn't exist.
	LoadJob(ctx context.Context, id string) (*core.Job, error)
}

// Store is one storage session over every collection.
type Store interface {
	Agents() KeyedRepository[*core.Agent]
	Carriers() KeyedRepository[*core.Carrier]
	LinesOfBusiness() KeyedRepository[*core.LineOfBusiness]
	Users() KeyedRepository[*core.User]
	Accounts() AccountRepository
	Policies() PolicyRepository
	Jobs() JobRepository

	// Close ends the session. The underlying database stays open.
	Close() error
}

// Connector opens storage sessions.
type Connector interface {
	Connect(ctx context.Context) (Store, error)
}

// ConnectorFunc adapts a function to the Connector interface.
type ConnectorFunc func(ctx context.Context) (Store, error)

// Connect calls f(ctx).
func (f ConnectorFunc) Connect(ctx context.Context) (Store, error) {
	return f(ctx)
}
