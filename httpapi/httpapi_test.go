package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/jobs"
	"github.com/poiesic/polingest/search"
)

const jobID = "0b5d6a0e-3f1c-4c7e-9a43-6f0f4a1d2b11"

type fakeJobs struct {
	submitted []string
	submitErr error
	jobs      map[string]*core.Job
}

func (f *fakeJobs) Submit(path string) (*core.Job, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, path)
	return &core.Job{Id: jobID, FilePath: path, Status: core.JobStatusPending}, nil
}

func (f *fakeJobs) Job(ctx context.Context, id string) (*core.Job, error) {
	if job, ok := f.jobs[id]; ok {
		return job, nil
	}
	return nil, jobs.ErrJobNotFound
}

type fakePolicies struct {
	result *search.UserPolicies
	err    error
}

func (f *fakePolicies) PoliciesByUserName(ctx context.Context, userName string) (*search.UserPolicies, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil || f.result.User.UserName != userName {
		return nil, search.ErrUserNotFound
	}
	return f.result, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func upload(t *testing.T, r http.Handler, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, "file", filename, content)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/document", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func xlsxBytes(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"agent", "company_name"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestUploadDocument(t *testing.T) {
	dir := t.TempDir()
	fj := &fakeJobs{}
	r := NewRouter(fj, &fakePolicies{}, WithUploadDir(dir))

	t.Run("csv accepted", func(t *testing.T) {
		rec := upload(t, r, "policies.csv", []byte("agent,company_name\nA1,Acme\n"))
		require.Equal(t, http.StatusAccepted, rec.Code)

		out := decode(t, rec)
		assert.Equal(t, "success", out["status"])
		assert.Equal(t, msgProcessing, out["message"])
		assert.Equal(t, map[string]any{"job_id": jobID}, out["data"])

		require.NotEmpty(t, fj.submitted)
		stored := fj.submitted[len(fj.submitted)-1]
		assert.Equal(t, dir, filepath.Dir(stored))
		assert.Equal(t, ".csv", filepath.Ext(stored))
		data, err := os.ReadFile(stored)
		require.NoError(t, err)
		assert.Equal(t, "agent,company_name\nA1,Acme\n", string(data))
	})

	t.Run("xlsx accepted", func(t *testing.T) {
		rec := upload(t, r, "policies.xlsx", xlsxBytes(t))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		rec := upload(t, r, "notes.pdf", []byte("%PDF-1.4"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		out := decode(t, rec)
		assert.Equal(t, "failed", out["status"])
		assert.NotContains(t, out, "data")
	})

	t.Run("content does not match extension", func(t *testing.T) {
		rec := upload(t, r, "policies.xlsx", []byte("agent,company_name\nA1,Acme\n"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		body, contentType := multipartBody(t, "other", "policies.csv", []byte("a\n1\n"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/document", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgUploadFailed, decode(t, rec)["message"])
	})
}

func TestUploadDocument_QueueFull(t *testing.T) {
	dir := t.TempDir()
	r := NewRouter(&fakeJobs{submitErr: jobs.ErrQueueFull}, &fakePolicies{}, WithUploadDir(dir))

	rec := upload(t, r, "policies.csv", []byte("agent\nA1\n"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, msgProcessFailed, decode(t, rec)["message"])

	// The rejected upload is not left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadDocument_TooLarge(t *testing.T) {
	r := NewRouter(&fakeJobs{}, &fakePolicies{}, WithUploadDir(t.TempDir()), WithMaxUploadBytes(64))

	rec := upload(t, r, "policies.csv", bytes.Repeat([]byte("agent\n"), 100))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserPolicies(t *testing.T) {
	fp := &fakePolicies{result: &search.UserPolicies{
		User: &core.User{UserName: "jdoe", FirstName: "John", State: "CA"},
		Policies: []search.PolicyView{
			{PolicyNumber: "P-1", CarrierName: "Acme", LobName: "Auto",
				StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}}
	r := NewRouter(&fakeJobs{}, fp)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("found", func(t *testing.T) {
		rec := get("/api/v1/user/jdoe")
		require.Equal(t, http.StatusOK, rec.Code)

		out := decode(t, rec)
		assert.Equal(t, msgPoliciesFetched, out["message"])
		data := out["data"].(map[string]any)
		user := data["user"].(map[string]any)
		assert.Equal(t, "jdoe", user["userName"])
		assert.Equal(t, "CA", user["state"])

		policies := data["policies"].([]any)
		require.Len(t, policies, 1)
		p := policies[0].(map[string]any)
		assert.Equal(t, "P-1", p["policy_number"])
		assert.Equal(t, "Acme", p["carrier_name"])
		assert.Equal(t, "Auto", p["lob_name"])
		assert.Equal(t, "2024-01-01T00:00:00Z", p["policy_start_date"])
		assert.NotContains(t, p, "policy_end_date")
	})

	t.Run("not alphanumeric", func(t *testing.T) {
		rec := get("/api/v1/user/j-doe")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgValidationFailed, decode(t, rec)["message"])
	})

	t.Run("not found", func(t *testing.T) {
		rec := get("/api/v1/user/nobody")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, msgUserNotFound, decode(t, rec)["message"])
	})

	t.Run("storage error", func(t *testing.T) {
		r := NewRouter(&fakeJobs{}, &fakePolicies{err: errors.New("boom")})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/user/jdoe", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetJob(t *testing.T) {
	fj := &fakeJobs{jobs: map[string]*core.Job{
		jobID: {
			Id:       jobID,
			Format:   "csv",
			Checksum: core.ID(0xabc),
			Status:   core.JobStatusSucceeded,
			Message:  jobs.MessageSucceeded,
			Counts:   core.EntityCounts{Rows: 2, Policies: 2},
			Gaps:     []core.ResolutionGap{{Row: 1, Field: "lob_id", Reason: "blank natural key"}},
		},
	}}
	r := NewRouter(fj, &fakePolicies{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "succeeded", data["status"])
	assert.Equal(t, jobs.MessageSucceeded, data["message"])
	assert.Equal(t, "0000000000000abc", data["checksum"])
	assert.Equal(t, float64(2), data["counts"].(map[string]any)["policies"])
	require.Len(t, data["gaps"], 1)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/2c1f0a52-5a0e-4b8e-8a57-1d2a3b4c5d6e", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics(t *testing.T) {
	r := NewRouter(&fakeJobs{}, &fakePolicies{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
