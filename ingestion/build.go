package ingestion

import (
	"strings"

	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/tabular"
)

// Gap reasons.
const (
	ReasonBlankKey    = "blank natural key"
	ReasonUnresolved  = "natural key not resolved"
	ReasonInvalidDate = "unparseable date"
)

// Dependents holds the per-row records, index-aligned with the input rows.
type Dependents struct {
	Accounts []*core.UserAccount
	Policies []*core.Policy
}

// BuildDependents builds one UserAccount and one Policy for every row, in
// row order. A reference is set only when its natural key is in refs; every
// reference left unset and every unparseable policy date is reported as a gap.
func BuildDependents(rows []tabular.Row, refs *References) (*Dependents, []core.ResolutionGap) {
	deps := &Dependents{
		Accounts: make([]*core.UserAccount, 0, len(rows)),
		Policies: make([]*core.Policy, 0, len(rows)),
	}
	var gaps []core.ResolutionGap

	for i, row := range rows {
		if row.Blank(ColAgent) {
			gaps = append(gaps, core.ResolutionGap{Row: i, Field: ColAgent, Reason: ReasonBlankKey})
		}

		userId, gap, ok := lookup(refs.Users, i, "user_id", row.Trimmed(ColUserName))
		if !ok {
			gaps = append(gaps, gap)
		}
		lobId, gap, ok := lookup(refs.Lobs, i, "lob_id", row.Get(ColCategoryName))
		if !ok {
			gaps = append(gaps, gap)
		}
		carrierId, gap, ok := lookup(refs.Carriers, i, "carrier_id", row.Get(ColCompanyName))
		if !ok {
			gaps = append(gaps, gap)
		}

		policy := &core.Policy{
			PolicyNumber: row.Get(ColPolicyNumber),
			LobId:        lobId,
			CarrierId:    carrierId,
			UserId:       userId,
		}
		var err error
		if policy.StartDate, err = core.ParseDate(row.Trimmed(ColPolicyStartDate)); err != nil {
			gaps = append(gaps, core.ResolutionGap{Row: i, Field: ColPolicyStartDate, Key: row.Get(ColPolicyStartDate), Reason: ReasonInvalidDate})
		}
		if policy.EndDate, err = core.ParseDate(row.Trimmed(ColPolicyEndDate)); err != nil {
			gaps = append(gaps, core.ResolutionGap{Row: i, Field: ColPolicyEndDate, Key: row.Get(ColPolicyEndDate), Reason: ReasonInvalidDate})
		}

		deps.Accounts = append(deps.Accounts, &core.UserAccount{
			AccountName: row.Get(ColAccountName),
			AccountType: row.Get(ColAccountType),
			UserId:      userId,
		})
		deps.Policies = append(deps.Policies, policy)
	}
	return deps, gaps
}

// lookup resolves key in m. When it fails, the gap describing why is returned.
func lookup(m map[string]core.ID, row int, field, key string) (core.ID, core.ResolutionGap, bool) {
	if strings.TrimSpace(key) == "" {
		return 0, core.ResolutionGap{Row: row, Field: field, Reason: ReasonBlankKey}, false
	}
	id, ok := m[key]
	if !ok {
		return 0, core.ResolutionGap{Row: row, Field: field, Key: key, Reason: ReasonUnresolved}, false
	}
	return id, core.ResolutionGap{}, true
}
