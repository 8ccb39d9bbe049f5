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


// Package jobs runs ingestion in the background.
//
// An Executor accepts file paths, records a pending job for each, and runs
// the ingestion pipeline on a bounded worker pool. Every job opens its own
// storage session and closes it when done. Submissions beyond the queue
// capacity are rejected with ErrQueueFull.
//
// Each job ends with exactly one terminal Message delivered to the notify
// callback, and a persisted core.Job record that can be polled by ID.
// Failed jobs are not retried and running jobs cannot be cancelled.
package jobs
