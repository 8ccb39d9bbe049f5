package ingestion

import (
	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/tabular"
)

// Entities holds one list per natural-key entity type.
type Entities struct {
	Agents   []*core.Agent
	Users    []*core.User
	Carriers []*core.Carrier
	Lobs     []*core.LineOfBusiness
}

// Deduplicate scans rows in order and keeps the first row for each natural
// key of each entity type. Blank keys produce no entity. The rows are not
// modified.
func Deduplicate(rows []tabular.Row) *Entities {
	ents := &Entities{}
	agents := make(map[string]bool)
	users := make(map[string]bool)
	carriers := make(map[string]bool)
	lobs := make(map[string]bool)

	for _, row := range rows {
		if name := row.Get(ColAgent); !row.Blank(ColAgent) && firstSeen(agents, name) {
			ents.Agents = append(ents.Agents, &core.Agent{AgentName: name})
		}
		if name := row.Trimmed(ColUserName); name != "" && firstSeen(users, name) {
			ents.Users = append(ents.Users, userFromRow(row))
		}
		if name := row.Get(ColCompanyName); !row.Blank(ColCompanyName) && firstSeen(carriers, name) {
			ents.Carriers = append(ents.Carriers, &core.Carrier{CompanyName: name})
		}
		if name := row.Get(ColCategoryName); !row.Blank(ColCategoryName) && firstSeen(lobs, name) {
			ents.Lobs = append(ents.Lobs, &core.LineOfBusiness{CategoryName: name})
		}
	}
	return ents
}

// firstSeen marks key as seen and reports whether it is new. Keys compare
// exactly as written.
func firstSeen(seen map[string]bool, key string) bool {
	if seen[key] {
		return false
	}
	seen[key] = true
	return true
}

func userFromRow(row tabular.Row) *core.User {
	return &core.User{
		UserName:  row.Trimmed(ColUserName),
		FirstName: row.Trimmed(ColFirstName),
		DOB:       row.Trimmed(ColDOB),
		Address:   row.Trimmed(ColAddress),
		Phone:     row.Trimmed(ColPhone),
		State:     row.Trimmed(ColState),
		Zip:       row.Trimmed(ColZip),
		Email:     row.Trimmed(ColEmail),
		Gender:    row.Trimmed(ColGender),
		UserType:  row.Trimmed(ColUserType),
	}
}
