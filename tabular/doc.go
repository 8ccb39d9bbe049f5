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


// Package tabular decodes policy upload files into rows.
//
// A Row maps column names to cell text. Every row carries every header
// column; missing cells are empty strings. Two formats are supported:
//
//   - csv: any charset with a BOM, UTF-8, or Latin-1 as a fallback
//   - xlsx: only the first sheet is read
//
// No schema is enforced. Callers read the columns they need.
package tabular
