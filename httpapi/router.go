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


package httpapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/search"
)

const defaultMaxUploadBytes = 32 << 20

// JobSubmitter queues uploads and reports job status.
type JobSubmitter interface {
	Submit(path string) (*core.Job, error)
	Job(ctx context.Context, id string) (*core.Job, error)
}

// PolicyFinder serves the policy read path.
type PolicyFinder interface {
	PoliciesByUserName(ctx context.Context, userName string) (*search.UserPolicies, error)
}

type server struct {
	jobs           JobSubmitter
	policies       PolicyFinder
	uploadDir      string
	maxUploadBytes int64
	logger         *slog.Logger
}

// Option configures the router.
type Option func(*server)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *server) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// WithUploadDir sets where uploads are stored until ingested.
// Default is "uploads".
func WithUploadDir(dir string) Option {
	return func(s *server) {
		s.uploadDir = dir
	}
}

// WithMaxUploadBytes caps the request body of an upload.
// Default is 32 MiB.
func WithMaxUploadBytes(n int64) Option {
	return func(s *server) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

// NewRouter builds the gin engine serving the API.
func NewRouter(jobs JobSubmitter, policies PolicyFinder, opts ...Option) *gin.Engine {
	s := &server{
		jobs:           jobs,
		policies:       policies,
		uploadDir:      "uploads",
		maxUploadBytes: defaultMaxUploadBytes,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	v1 := r.Group("/api/v1")
	v1.POST("/document", s.uploadDocument)
	v1.GET("/user/:userName", s.getUserPolicies)
	v1.GET("/jobs/:id", s.getJob)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// requestLogger logs each request through slog.
func (s *server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
