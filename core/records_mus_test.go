package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyMUS_UnsetReferencesSurvive(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 6000, time.UTC)
	policy := Policy{
		Meta:         Meta{Id: 7, CreatedDate: created},
		PolicyNumber: "P-100",
		StartDate:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		LobId:        3,
		UserId:       9,
	}

	buf := make([]byte, PolicyMUS.Size(policy))
	n := PolicyMUS.Marshal(policy, buf)
	require.Equal(t, len(buf), n)

	got, read, err := PolicyMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, n, read)
	assert.Equal(t, policy.PolicyNumber, got.PolicyNumber)
	assert.True(t, got.CreatedDate.Equal(created))
	assert.True(t, got.UpdatedDate.IsZero(), "updatedDate must stay absent at creation")
	assert.True(t, got.EndDate.IsZero())
	assert.Equal(t, ID(0), got.CarrierId)
	assert.Equal(t, ID(3), got.LobId)
	assert.Equal(t, ID(9), got.UserId)
}

func TestJobMUS_WithGaps(t *testing.T) {
	job := Job{
		Id:       "9b1c",
		FilePath: "/tmp/upload.csv",
		Format:   "csv",
		Checksum: IDFromContent([]byte("x")),
		Status:   JobStatusSucceeded,
		Message:  "file successfully processed",
		Counts:   EntityCounts{Rows: 2, Agents: 1, Carriers: 1, Lobs: 2, Users: 2, Accounts: 2, Policies: 2},
		Gaps: []ResolutionGap{
			{Row: 1, Field: "carrier_id", Key: "", Reason: "blank natural key"},
		},
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
		FinishedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	buf := make([]byte, JobMUS.Size(job))
	JobMUS.Marshal(job, buf)

	got, _, err := JobMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, job.Id, got.Id)
	assert.Equal(t, job.Status, got.Status)
	assert.Equal(t, job.Counts, got.Counts)
	assert.Equal(t, job.Gaps, got.Gaps)
	assert.True(t, got.StartedAt.IsZero())
	assert.True(t, job.FinishedAt.Equal(got.FinishedAt))
}

func TestUserMUS_Truncated(t *testing.T) {
	user := User{UserName: "u2", FirstName: "Sam", State: "CA"}
	buf := make([]byte, UserMUS.Size(user))
	UserMUS.Marshal(user, buf)

	_, _, err := UserMUS.Unmarshal(buf[:len(buf)-3])
	assert.Error(t, err)
}

func TestJobMUS_SkipMatchesSize(t *testing.T) {
	job := Job{
		Id:        "a",
		Status:    JobStatusFailed,
		Gaps:      []ResolutionGap{{Row: 3, Field: "lob_id", Key: "Auto", Reason: "unresolved reference"}},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	buf := make([]byte, JobMUS.Size(job))
	JobMUS.Marshal(job, buf)

	n, err := JobMUS.Skip(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
}
