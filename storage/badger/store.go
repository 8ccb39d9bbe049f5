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
	"log/slog"
	"sync/atomic"

	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/storage"
)

// store is a storage session on a shared Backend.
type store struct {
	backend *Backend
	logger  *slog.Logger
	closed  atomic.Bool

	agents   *collection[*core.Agent]
	carriers *collection[*core.Carrier]
	lobs     *collection[*core.LineOfBusiness]
	users    *collection[*core.User]
	accounts *accountCollection
	policies *policyCollection
	jobs     *JobRepository
}

var _ storage.Store = (*store)(nil)

// NewStore opens a storage session on backend.
func NewStore(backend *Backend) (storage.Store, error) {
	if backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	s := &store{
		backend: backend,
		logger:  backend.logger.With("component", "store"),
	}

	var err error
	if s.agents, err = newCollection(s, "agent", agentPrefix, agentIDSeq, storage.MarshalAgent, storage.UnmarshalAgent, core.ValidateAgent); err != nil {
		return nil, err
	}
	s.agents.keyed(agentKeyPrefix)

	if s.carriers, err = newCollection(s, "carrier", carrierPrefix, carrierIDSeq, storage.MarshalCarrier, storage.UnmarshalCarrier, core.ValidateCarrier); err != nil {
		return nil, err
	}
	s.carriers.keyed(carrierKeyPrefix)

	if s.lobs, err = newCollection(s, "line of business", lobPrefix, lobIDSeq, storage.MarshalLineOfBusiness, storage.UnmarshalLineOfBusiness, core.ValidateLineOfBusiness); err != nil {
		return nil, err
	}
	s.lobs.keyed(lobKeyPrefix)

	if s.users, err = newCollection(s, "user", userPrefix, userIDSeq, storage.MarshalUser, storage.UnmarshalUser, core.ValidateUser); err != nil {
		return nil, err
	}
	s.users.keyed(userKeyPrefix)

	accounts, err := newCollection(s, "user account", accountPrefix, accountIDSeq, storage.MarshalUserAccount, storage.UnmarshalUserAccount, noValidation[*core.UserAccount])
	if err != nil {
		return nil, err
	}
	accounts.refs = []refIndex[*core.UserAccount]{
		{prefix: accountUserPrefix, ref: func(a *core.UserAccount) core.ID { return a.UserId }},
	}
	s.accounts = &accountCollection{collection: accounts}

	policies, err := newCollection(s, "policy", policyPrefix, policyIDSeq, storage.MarshalPolicy, storage.UnmarshalPolicy, noValidation[*core.Policy])
	if err != nil {
		return nil, err
	}
	policies.refs = []refIndex[*core.Policy]{
		{prefix: policyUserPrefix, ref: func(p *core.Policy) core.ID { return p.UserId }},
	}
	s.policies = &policyCollection{collection: policies}

	s.jobs = &JobRepository{session: s}
	return s, nil
}

func newCollection[T core.Document](
	s *store,
	name, prefix, seqName string,
	marshal func(T) []byte,
	unmarshal func([]byte) (T, error),
	validate func(T) error,
) (*collection[T], error) {
	seq, err := s.backend.Sequence(seqName)
	if err != nil {
		return nil, err
	}
	return &collection[T]{
		session:   s,
		name:      name,
		prefix:    prefix,
		seq:       seq,
		marshal:   marshal,
		unmarshal: unmarshal,
		validate:  validate,
	}, nil
}

// keyed enables the natural-key index for the collection.
func (c *collection[T]) keyed(keyPrefix string) {
	c.keyPrefix = keyPrefix
	c.naturalKey = func(doc T) string {
		if k, ok := any(doc).(core.Keyed); ok {
			return k.NaturalKey()
		}
		return ""
	}
}

func noValidation[T any](T) error {
	return nil
}

func (s *store) Agents() storage.KeyedRepository[*core.Agent] {
	return s.agents
}

func (s *store) Carriers() storage.KeyedRepository[*core.Carrier] {
	return s.carriers
}

func (s *store) LinesOfBusiness() storage.KeyedRepository[*core.LineOfBusiness] {
	return s.lobs
}

func (s *store) Users() storage.KeyedRepository[*core.User] {
	return s.users
}

func (s *store) Accounts() storage.AccountRepository {
	return s.accounts
}

func (s *store) Policies() storage.PolicyRepository {
	return s.policies
}

func (s *store) Jobs() storage.JobRepository {
	return s.jobs
}

// Close ends the session. Closing twice is a no-op.
func (s *store) Close() error {
	s.closed.Store(true)
	return nil
}

// accountCollection adds the user index query to the account collection.
type accountCollection struct {
	*collection[*core.UserAccount]
}

var _ storage.AccountRepository = (*accountCollection)(nil)

// GetAccountsByUser retrieves the accounts referencing userID.
func (a *accountCollection) GetAccountsByUser(ctx context.Context, userID core.ID) ([]*core.UserAccount, error) {
	return a.byRef(ctx, accountUserPrefix, userID)
}

// policyCollection adds the user index query to the policy collection.
type policyCollection struct {
	*collection[*core.Policy]
}

var _ storage.PolicyRepository = (*policyCollection)(nil)

// GetPoliciesByUser retrieves the policies referencing userID.
func (p *policyCollection) GetPoliciesByUser(ctx context.Context, userID core.ID) ([]*core.Policy, error) {
	return p.byRef(ctx, policyUserPrefix, userID)
}
