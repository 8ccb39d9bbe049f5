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


// Package httpapi exposes ingestion over HTTP with gin.
//
// Routes:
//
//	POST /api/v1/document          upload a csv or xlsx file for background ingestion
//	GET  /api/v1/user/:userName    policies of a user
//	GET  /api/v1/jobs/:id          status of an ingestion job
//	GET  /metrics                  Prometheus metrics
//
// Every JSON response uses the envelope {"status", "message", "data"}; data
// is omitted on failures.
package httpapi
