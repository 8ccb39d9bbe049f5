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

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/storage"
)

// JobRepository implements storage.JobRepository for BadgerDB.
type JobRepository struct {
	session *store
}

var _ storage.JobRepository = (*JobRepository)(nil)

// SaveJob persists a job status record, replacing any previous version.
func (r *JobRepository) SaveJob(ctx context.Context, job *core.Job) error {
	if r.session.closed.Load() {
		return storage.ErrSessionClosed
	}
	return r.session.backend.WithTx(func(tx *badger.Txn) error {
		key := makeJobKey(job.Id)
		value := storage.MarshalJob(job)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadJob retrieves the job status record with the given id.
func (r *JobRepository) LoadJob(ctx context.Context, id string) (*core.Job, error) {
	if r.session.closed.Load() {
		return nil, storage.ErrSessionClosed
	}
	var job *core.Job
	err := r.session.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeJobKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			job, unmarshalErr = storage.UnmarshalJob(val)
			return unmarshalErr
		})
	}, false)

	return job, err
}
