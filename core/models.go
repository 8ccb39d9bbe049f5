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


package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"hash"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for persisted documents.
// Zero means "unset"; storage sequences never hand out zero.
type ID uint64

// IDFromContent generates a deterministic ID from content using BLAKE2b hashing.
// Identical content always produces the identical ID.
func IDFromContent(content []byte) ID {
	h := NewContentHash()
	h.Write(content)
	return h.ID()
}

// ContentHash computes IDFromContent incrementally, as an io.Writer.
type ContentHash struct {
	h hash.Hash
}

func NewContentHash() *ContentHash {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	return &ContentHash{h: h}
}

func (c *ContentHash) Write(p []byte) (int, error) {
	return c.h.Write(p)
}

// ID returns the ID of everything written so far.
func (c *ContentHash) ID() ID {
	return ID(binary.LittleEndian.Uint64(c.h.Sum(nil)))
}

// Meta is the bookkeeping shared by every persisted document.
type Meta struct {
	Id          ID
	CreatedDate time.Time // Set at insertion
	UpdatedDate time.Time // Zero until a later mutation
	DeletedDate time.Time // Soft delete, unused by ingestion
	IsDeleted   bool
}

// Base gives generic code access to the embedded Meta.
func (m *Meta) Base() *Meta {
	return m
}

// Document is implemented by pointers to every persisted entity.
type Document interface {
	Base() *Meta
}

// Keyed is a document identified by a business-meaningful natural key.
type Keyed interface {
	Document
	NaturalKey() string
}

// Agent is keyed by AgentName.
type Agent struct {
	Meta
	AgentName string
}

func (a *Agent) NaturalKey() string { return a.AgentName }

// Carrier is keyed by CompanyName.
type Carrier struct {
	Meta
	CompanyName string
}

func (c *Carrier) NaturalKey() string { return c.CompanyName }

// LineOfBusiness is keyed by CategoryName.
type LineOfBusiness struct {
	Meta
	CategoryName string
}

func (l *LineOfBusiness) NaturalKey() string { return l.CategoryName }

// User is keyed by UserName.
type User struct {
	Meta
	UserName  string
	FirstName string
	DOB       string // Stored as written in the source file
	Address   string
	Phone     string
	State     string
	Zip       string
	Email     string
	Gender    string
	UserType  string
}

func (u *User) NaturalKey() string { return u.UserName }

// UserAccount is created once per ingested row.
type UserAccount struct {
	Meta
	AccountName string
	AccountType string
	UserId      ID // Zero when the row's user could not be resolved
}

// Policy is created once per ingested row.
// Reference fields are zero when the corresponding natural key did not resolve.
type Policy struct {
	Meta
	PolicyNumber string
	StartDate    time.Time
	EndDate      time.Time
	LobId        ID
	CarrierId    ID
	UserId       ID
}

// JobStatus is the lifecycle state of an ingestion job.
type JobStatus int

const (
	// JobStatusPending means the job is queued and waiting for a worker.
	JobStatusPending JobStatus = iota + 1
	// JobStatusRunning means a worker picked the job up.
	JobStatusRunning
	// JobStatusSucceeded is terminal.
	JobStatusSucceeded
	// JobStatusFailed is terminal.
	JobStatusFailed
)

func (s JobStatus) String() string {
	switch s {
	case JobStatusPending:
		return "pending"
	case JobStatusRunning:
		return "running"
	case JobStatusSucceeded:
		return "succeeded"
	case JobStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed
}

// ResolutionGap records a row whose reference or value could not be filled in.
type ResolutionGap struct {
	Row    int    // Zero-based index of the input row
	Field  string // e.g. "lob_id", "carrier_id", "policy_start_date"
	Key    string // The natural key or raw value that failed
	Reason string
}

// EntityCounts summarizes what a run persisted.
type EntityCounts struct {
	Rows     int
	Agents   int
	Carriers int
	Lobs     int
	Users    int
	Accounts int
	Policies int
}

// Job is the persisted status record of one ingestion run.
type Job struct {
	Id         string // UUID
	FilePath   string
	Format     string
	Checksum   ID // IDFromContent of the file bytes, zero unless the file parsed
	Status     JobStatus
	Message    string // Terminal message sent to the submitter
	Error      string
	Counts     EntityCounts
	Gaps       []ResolutionGap
	CreatedAt  time.Time
	StartedAt  time.Time
	FinishedAt time.Time
}
