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



// Package storage provides the storage abstraction layer for polingest.
//
// This package defines repository interfaces that decouple the ingestion pipeline
// from the document store. The pipeline only ever sees a Store: one storage
// session holding the six entity collections plus the job-status records.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return these interfaces so consumers
// never couple to BadgerDB specifics:
//
//	store, err := badger.NewStore(backend)  // returns storage.Store
//
// # Architecture
//
//   - EntityRepository: batch insert and lookup by generated identifier
//   - KeyedRepository: adds natural-key lookup and upsert-by-natural-key
//   - PolicyRepository / AccountRepository: add lookup by user reference
//   - JobRepository: persisted ingestion job status
//   - Store: one session over all of the above
//   - Connector: opens a new Store; every background job opens its own
//
// # Batch Semantics
//
// Add and Upsert are all-or-nothing: every record of a batch is validated and
// written inside one transaction. A validation failure rejects the whole batch
// with ErrBulkInsert and nothing is committed.
//
// # Usage
//
// Use in tests with in-memory storage:
//
//	store, backend, err := badger.NewMemoryStore()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	defer store.Close()
//
// # Thread Safety
//
// All repository implementations must be safe for concurrent use.
package storage
