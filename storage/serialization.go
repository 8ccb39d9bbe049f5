package storage

import (
	"fmt"
	"time"

	"github.com/poiesic/polingest/core"
)

type serializer[T any] interface {
	Marshal(v T, bs []byte) int
	Unmarshal(bs []byte) (T, int, error)
	Size(v T) int
}

func marshal[T any](s serializer[T], v T) []byte {
	buf := make([]byte, s.Size(v))
	s.Marshal(v, buf)
	return buf
}

func unmarshal[T any](s serializer[T], data []byte) (*T, error) {
	v, _, err := s.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	inUTC(&v)
	return &v, nil
}

// inUTC moves decoded timestamps out of the local zone the codec yields.
func inUTC(v any) {
	if doc, ok := v.(core.Document); ok {
		m := doc.Base()
		toUTC(&m.CreatedDate, &m.UpdatedDate, &m.DeletedDate)
	}
	switch r := v.(type) {
	case *core.Policy:
		toUTC(&r.StartDate, &r.EndDate)
	case *core.Job:
		toUTC(&r.CreatedAt, &r.StartedAt, &r.FinishedAt)
	}
}

func toUTC(ts ...*time.Time) {
	for _, t := range ts {
		*t = t.UTC()
	}
}

func MarshalID(id core.ID) []byte {
	return marshal[core.ID](core.IDMUS, id)
}

func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

func MarshalAgent(agent *core.Agent) []byte {
	return marshal[core.Agent](core.AgentMUS, *agent)
}

func UnmarshalAgent(data []byte) (*core.Agent, error) {
	return unmarshal[core.Agent](core.AgentMUS, data)
}

func MarshalCarrier(carrier *core.Carrier) []byte {
	return marshal[core.Carrier](core.CarrierMUS, *carrier)
}

func UnmarshalCarrier(data []byte) (*core.Carrier, error) {
	return unmarshal[core.Carrier](core.CarrierMUS, data)
}

func MarshalLineOfBusiness(lob *core.LineOfBusiness) []byte {
	return marshal[core.LineOfBusiness](core.LineOfBusinessMUS, *lob)
}

func UnmarshalLineOfBusiness(data []byte) (*core.LineOfBusiness, error) {
	return unmarshal[core.LineOfBusiness](core.LineOfBusinessMUS, data)
}

func MarshalUser(user *core.User) []byte {
	return marshal[core.User](core.UserMUS, *user)
}

func UnmarshalUser(data []byte) (*core.User, error) {
	return unmarshal[core.User](core.UserMUS, data)
}

func MarshalUserAccount(account *core.UserAccount) []byte {
	return marshal[core.UserAccount](core.UserAccountMUS, *account)
}

func UnmarshalUserAccount(data []byte) (*core.UserAccount, error) {
	return unmarshal[core.UserAccount](core.UserAccountMUS, data)
}

func MarshalPolicy(policy *core.Policy) []byte {
	return marshal[core.Policy](core.PolicyMUS, *policy)
}

func UnmarshalPolicy(data []byte) (*core.Policy, error) {
	return unmarshal[core.Policy](core.PolicyMUS, data)
}

func MarshalJob(job *core.Job) []byte {
	return marshal[core.Job](core.JobMUS, *job)
}

func UnmarshalJob(data []byte) (*core.Job, error) {
	return unmarshal[core.Job](core.JobMUS, data)
}
