package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/jobs"
	"github.com/poiesic/polingest/search"
)

const (
	msgProcessing       = "Processing policy data."
	msgUploadFailed     = "Unable to upload file."
	msgProcessFailed    = "Unable to process policy data."
	msgValidationFailed = "Body/Params validation failed."
	msgUserNotFound     = "User not found."
	msgPoliciesFetched  = "User policies fetched successfully."
	msgFetchFailed      = "Unable to fetch data."
	msgJobNotFound      = "Job not found."
	msgJobFetched       = "Job fetched successfully."
)

// POST /api/v1/document
func (s *server) uploadDocument(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		s.logger.Warn("upload rejected", "err", err)
		RespondError(c, http.StatusBadRequest, msgUploadFailed)
		return
	}

	path, err := saveUpload(fh, s.uploadDir)
	if err != nil {
		if errors.Is(err, errInvalidFileType) {
			RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("error saving upload", "filename", fh.Filename, "err", err)
		RespondError(c, http.StatusInternalServerError, msgUploadFailed)
		return
	}

	job, err := s.jobs.Submit(path)
	if err != nil {
		os.Remove(path)
		if errors.Is(err, jobs.ErrQueueFull) {
			c.Header("Retry-After", "30")
			RespondError(c, http.StatusServiceUnavailable, msgProcessFailed)
			return
		}
		s.logger.Error("error submitting upload", "path", path, "err", err)
		RespondError(c, http.StatusInternalServerError, msgProcessFailed)
		return
	}

	RespondOK(c, http.StatusAccepted, msgProcessing, gin.H{"job_id": job.Id})
}

type userParams struct {
	UserName string `uri:"userName" binding:"required,alphanum"`
}

type userView struct {
	UserName  string `json:"userName"`
	FirstName string `json:"firstname"`
	DOB       string `json:"dob,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Email     string `json:"email,omitempty"`
	Gender    string `json:"gender,omitempty"`
	UserType  string `json:"userType,omitempty"`
}

// GET /api/v1/user/:userName
func (s *server) getUserPolicies(c *gin.Context) {
	var params userParams
	if err := c.ShouldBindUri(&params); err != nil {
		RespondError(c, http.StatusBadRequest, msgValidationFailed)
		return
	}

	found, err := s.policies.PoliciesByUserName(c.Request.Context(), params.UserName)
	if err != nil {
		if errors.Is(err, search.ErrUserNotFound) {
			RespondError(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		s.logger.Error("error fetching policies", "user_name", params.UserName, "err", err)
		RespondError(c, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	u := found.User
	policies := found.Policies
	if policies == nil {
		policies = []search.PolicyView{}
	}
	RespondOK(c, http.StatusOK, msgPoliciesFetched, gin.H{
		"user": userView{
			UserName:  u.UserName,
			FirstName: u.FirstName,
			DOB:       u.DOB,
			Address:   u.Address,
			Phone:     u.Phone,
			State:     u.State,
			Zip:       u.Zip,
			Email:     u.Email,
			Gender:    u.Gender,
			UserType:  u.UserType,
		},
		"policies": policies,
	})
}

type jobView struct {
	Id         string     `json:"id"`
	Status     string     `json:"status"`
	Message    string     `json:"message,omitempty"`
	Error      string     `json:"error,omitempty"`
	Format     string     `json:"format"`
	Checksum   string     `json:"checksum,omitempty"`
	Counts     countsView `json:"counts"`
	Gaps       []gapView  `json:"gaps,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  time.Time  `json:"started_at,omitzero"`
	FinishedAt time.Time  `json:"finished_at,omitzero"`
}

type countsView struct {
	Rows     int `json:"rows"`
	Agents   int `json:"agents"`
	Carriers int `json:"carriers"`
	Lobs     int `json:"lobs"`
	Users    int `json:"users"`
	Accounts int `json:"accounts"`
	Policies int `json:"policies"`
}

type gapView struct {
	Row    int    `json:"row"`
	Field  string `json:"field"`
	Key    string `json:"key,omitempty"`
	Reason string `json:"reason"`
}

func newJobView(job *core.Job) jobView {
	v := jobView{
		Id:         job.Id,
		Status:     job.Status.String(),
		Message:    job.Message,
		Error:      job.Error,
		Format:     job.Format,
		Counts:     countsView(job.Counts),
		CreatedAt:  job.CreatedAt,
		StartedAt:  job.StartedAt,
		FinishedAt: job.FinishedAt,
	}
	if job.Checksum != 0 {
		v.Checksum = fmt.Sprintf("%016x", uint64(job.Checksum))
	}
	for _, g := range job.Gaps {
		v.Gaps = append(v.Gaps, gapView(g))
	}
	return v
}

// GET /api/v1/jobs/:id
func (s *server) getJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, msgValidationFailed)
		return
	}

	job, err := s.jobs.Job(c.Request.Context(), id.String())
	if err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			RespondError(c, http.StatusNotFound, msgJobNotFound)
			return
		}
		s.logger.Error("error fetching job", "job_id", id, "err", err)
		RespondError(c, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	RespondOK(c, http.StatusOK, msgJobFetched, newJobView(job))
}
