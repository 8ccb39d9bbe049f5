package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/poiesic/polingest/storage"
)

// persistDependents writes accounts, then policies. Both batches are
// attempted; the returned error joins the failures.
func persistDependents(ctx context.Context, store storage.Store, deps *Dependents) (*Dependents, error) {
	out := &Dependents{}
	var errs []error

	if len(deps.Accounts) > 0 {
		accounts, err := store.Accounts().Add(ctx, deps.Accounts...)
		if err != nil {
			errs = append(errs, fmt.Errorf("insert user accounts: %w", err))
		}
		out.Accounts = accounts
	}
	if len(deps.Policies) > 0 {
		policies, err := store.Policies().Add(ctx, deps.Policies...)
		if err != nil {
			errs = append(errs, fmt.Errorf("insert policies: %w", err))
		}
		out.Policies = policies
	}
	return out, errors.Join(errs...)
}
