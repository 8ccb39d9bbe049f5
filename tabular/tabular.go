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


package tabular

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format is the declared encoding of an upload.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Row is one data row keyed by column name.
type Row map[string]string

// Get returns the value of column as written, or "" if the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// Trimmed returns the value of column without surrounding whitespace.
func (r Row) Trimmed(column string) string {
	return strings.TrimSpace(r[column])
}

// Blank reports whether column is absent or holds only whitespace.
func (r Row) Blank(column string) bool {
	return r.Trimmed(column) == ""
}

// ParseFormat validates a declared format such as "CSV" or ".xlsx".
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch f {
	case FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// ParseFile decodes the file at path as format.
func ParseFile(path string, format Format) ([]Row, error) {
	return ParseFileTee(path, format, nil)
}

// ParseFileTee decodes the file at path as format, copying every byte of
// the file to w as it is read. w sees the whole file only when parsing
// succeeds. A nil w is ignored.
func ParseFileTee(path string, format Format, w io.Writer) ([]Row, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}
	if w == nil {
		return Parse(f, format)
	}

	r := io.TeeReader(f, w)
	rows, err := Parse(r, format)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	return rows, nil
}

// Parse decodes r as format.
func Parse(r io.Reader, format Format) ([]Row, error) {
	switch format {
	case FormatCSV:
		return parseCSV(r)
	case FormatXLSX:
		return parseXLSX(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// buildRows turns a header record and data records into rows.
// Blank header cells are ignored; for repeated headers the first column wins.
// Short records are padded, extra cells dropped, and fully blank records skipped.
func buildRows(header []string, records [][]string) []Row {
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		h = cleanHeader(h)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		columns[i] = h
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		if blankRecord(record) {
			continue
		}
		row := make(Row, len(seen))
		for i, col := range columns {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
