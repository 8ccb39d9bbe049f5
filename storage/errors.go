package storage

import "errors"

var (
	// ErrNotFound indicates that the requested record was not found.
	ErrNotFound = errors.New("record not found")

	// ErrBulkInsert indicates a batch was rejected because a record violated a
	// persistence constraint. Nothing from the batch was committed.
	ErrBulkInsert = errors.New("bulk insert failed")

	// ErrStorageClosed indicates that the storage backend is closed.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSessionClosed indicates use of a store session after Close.
	ErrSessionClosed = errors.New("storage session is closed")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")
)
