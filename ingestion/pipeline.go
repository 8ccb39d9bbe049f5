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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/storage"
	"github.com/poiesic/polingest/tabular"
)

// Pipeline runs the ingestion stages against a store session.
// A Pipeline holds no per-run state and may be shared by concurrent runs.
type Pipeline struct {
	logger  *slog.Logger
	upsert  bool
	nameGen NameGenerator
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithUpsert makes entity batches reuse stored records with the same natural
// key instead of inserting duplicates. Re-ingesting a file then creates no new
// agents, users, carriers or lines of business.
// Default is false: every run inserts its own full set of entities.
func WithUpsert(upsert bool) Option {
	return func(p *Pipeline) error {
		p.upsert = upsert
		return nil
	}
}

// WithNameGenerator replaces the generator used for blank userName values.
// Default is RandomName.
func WithNameGenerator(gen NameGenerator) Option {
	return func(p *Pipeline) error {
		if gen == nil {
			return ErrNameGeneratorRequired
		}
		p.nameGen = gen
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		logger:  slog.Default(),
		nameGen: RandomName,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Result describes a completed run.
type Result struct {
	Rows     int
	Checksum core.ID // content ID of the parsed file, zero for Run
	Entities *Entities // persisted entities, IDs populated
	Accounts []*core.UserAccount
	Policies []*core.Policy
	Gaps     []core.ResolutionGap
}

// Counts summarizes the records persisted by the run.
func (r *Result) Counts() core.EntityCounts {
	return core.EntityCounts{
		Rows:     r.Rows,
		Agents:   len(r.Entities.Agents),
		Carriers: len(r.Entities.Carriers),
		Lobs:     len(r.Entities.Lobs),
		Users:    len(r.Entities.Users),
		Accounts: len(r.Accounts),
		Policies: len(r.Policies),
	}
}

// IngestFile parses the file at path and runs the pipeline on its rows.
func (p *Pipeline) IngestFile(ctx context.Context, store storage.Store, path string, format tabular.Format) (*Result, error) {
	sum := core.NewContentHash()
	rows, err := tabular.ParseFileTee(path, format, sum)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("parsed file", "path", path, "format", format, "rows", len(rows))

	result, err := p.Run(ctx, store, rows)
	if err != nil {
		return nil, err
	}
	result.Checksum = sum.ID()
	return result, nil
}

// Run ingests rows in one sequential pass. Rows are normalized in place.
// An entity batch failure aborts the run before any dependent record is
// built; the remaining entity batches are still attempted first.
func (p *Pipeline) Run(ctx context.Context, store storage.Store, rows []tabular.Row) (*Result, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	if generated := NormalizeRows(rows, p.nameGen); generated > 0 {
		p.logger.Debug("generated user names", "count", generated)
	}

	ents := Deduplicate(rows)
	p.logger.Debug("deduplicated entities",
		"rows", len(rows),
		"agents", len(ents.Agents),
		"users", len(ents.Users),
		"carriers", len(ents.Carriers),
		"lobs", len(ents.Lobs))

	persisted, err := p.insertEntities(ctx, store, ents)
	if err != nil {
		return nil, fmt.Errorf("insert entities: %w", err)
	}

	refs := Resolve(persisted)
	deps, gaps := BuildDependents(rows, refs)
	if len(gaps) > 0 {
		p.logger.Warn("unresolved references", "gaps", len(gaps))
	}

	written, err := persistDependents(ctx, store, deps)
	if err != nil {
		return nil, fmt.Errorf("persist dependents: %w", err)
	}

	result := &Result{
		Rows:     len(rows),
		Entities: persisted,
		Accounts: written.Accounts,
		Policies: written.Policies,
		Gaps:     gaps,
	}
	counts := result.Counts()
	p.logger.Info("ingestion complete",
		"rows", counts.Rows,
		"agents", counts.Agents,
		"users", counts.Users,
		"carriers", counts.Carriers,
		"lobs", counts.Lobs,
		"accounts", counts.Accounts,
		"policies", counts.Policies,
		"gaps", len(gaps))
	return result, nil
}
