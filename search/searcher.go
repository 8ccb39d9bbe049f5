package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/storage"
)

// PolicyView is one policy flattened with its carrier and line-of-business names.
// Names are empty when the reference is unset or dangling.
type PolicyView struct {
	PolicyNumber string    `json:"policy_number"`
	CarrierName  string    `json:"carrier_name"`
	LobName      string    `json:"lob_name"`
	StartDate    time.Time `json:"policy_start_date,omitzero"`
	EndDate      time.Time `json:"policy_end_date,omitzero"`
}

// UserPolicies is the result of a lookup by userName.
type UserPolicies struct {
	User     *core.User
	Policies []PolicyView
}

// Searcher reads policies by user.
type Searcher struct {
	store  storage.Store
	logger *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over store.
func NewSearcher(store storage.Store, opts ...Option) (*Searcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	s := &Searcher{
		store:  store,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// PoliciesByUserName finds the user with userName and returns its policies
// in insertion order. When several users share the name, the most recently
// ingested one is used.
func (s *Searcher) PoliciesByUserName(ctx context.Context, userName string) (*UserPolicies, error) {
	userName = strings.TrimSpace(userName)
	user, err := s.store.Users().FindByKey(ctx, userName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userName)
		}
		return nil, err
	}

	policies, err := s.store.Policies().GetPoliciesByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	carrierNames, err := s.carrierNames(ctx, policies)
	if err != nil {
		return nil, err
	}
	lobNames, err := s.lobNames(ctx, policies)
	if err != nil {
		return nil, err
	}

	views := make([]PolicyView, len(policies))
	for i, policy := range policies {
		views[i] = PolicyView{
			PolicyNumber: policy.PolicyNumber,
			CarrierName:  carrierNames[policy.CarrierId],
			LobName:      lobNames[policy.LobId],
			StartDate:    policy.StartDate,
			EndDate:      policy.EndDate,
		}
	}
	s.logger.Debug("policies by user", "user_name", userName, "user_id", user.Id, "policies", len(views))

	return &UserPolicies{User: user, Policies: views}, nil
}

func (s *Searcher) carrierNames(ctx context.Context, policies []*core.Policy) (map[core.ID]string, error) {
	ids := distinctRefs(policies, func(p *core.Policy) core.ID { return p.CarrierId })
	carriers, err := s.store.Carriers().GetMany(ctx, ids...)
	if err != nil {
		return nil, err
	}
	names := make(map[core.ID]string, len(carriers))
	for _, c := range carriers {
		names[c.Id] = c.CompanyName
	}
	return names, nil
}

func (s *Searcher) lobNames(ctx context.Context, policies []*core.Policy) (map[core.ID]string, error) {
	ids := distinctRefs(policies, func(p *core.Policy) core.ID { return p.LobId })
	lobs, err := s.store.LinesOfBusiness().GetMany(ctx, ids...)
	if err != nil {
		return nil, err
	}
	names := make(map[core.ID]string, len(lobs))
	for _, l := range lobs {
		names[l.Id] = l.CategoryName
	}
	return names, nil
}

// distinctRefs collects the non-zero references of policies, first occurrence first.
func distinctRefs(policies []*core.Policy, ref func(*core.Policy) core.ID) []core.ID {
	seen := make(map[core.ID]bool)
	var ids []core.ID
	for _, p := range policies {
		id := ref(p)
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
