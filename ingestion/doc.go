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


// Package ingestion turns parsed policy rows into persisted entities.
//
// A Pipeline run is one sequential, batch-oriented pass:
//   - NormalizeRows fills blank userName values
//   - Deduplicate extracts distinct agents, users, carriers and lines of business
//   - the inserter persists each entity list as one batch
//   - Resolve maps natural keys to generated IDs
//   - BuildDependents builds one UserAccount and one Policy per input row
//   - the sink persists accounts, then policies
//
// References that cannot be resolved are left unset and reported as
// core.ResolutionGap values in the run Result.
package ingestion
