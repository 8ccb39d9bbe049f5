package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/storage"
)

// insertEntities persists each list as one batch in the order
// agent, user, carrier, line of business. Every batch is attempted; the
// returned error joins the failures.
func (p *Pipeline) insertEntities(ctx context.Context, store storage.Store, ents *Entities) (*Entities, error) {
	out := &Entities{}
	var errs []error
	var err error

	if out.Agents, err = persistBatch(ctx, store.Agents(), p.upsert, "agents", ents.Agents); err != nil {
		errs = append(errs, err)
	}
	if out.Users, err = persistBatch(ctx, store.Users(), p.upsert, "users", ents.Users); err != nil {
		errs = append(errs, err)
	}
	if out.Carriers, err = persistBatch(ctx, store.Carriers(), p.upsert, "carriers", ents.Carriers); err != nil {
		errs = append(errs, err)
	}
	if out.Lobs, err = persistBatch(ctx, store.LinesOfBusiness(), p.upsert, "lines of business", ents.Lobs); err != nil {
		errs = append(errs, err)
	}
	return out, errors.Join(errs...)
}

// persistBatch adds records, or upserts them by natural key when upsert is set.
func persistBatch[T core.Keyed](ctx context.Context, repo storage.KeyedRepository[T], upsert bool, name string, records []T) ([]T, error) {
	if len(records) == 0 {
		return nil, nil
	}
	var (
		out []T
		err error
	)
	if upsert {
		out, err = repo.Upsert(ctx, records...)
	} else {
		out, err = repo.Add(ctx, records...)
	}
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", name, err)
	}
	return out, nil
}
