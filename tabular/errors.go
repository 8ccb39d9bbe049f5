package tabular

import "errors"

var (
	// ErrFileNotFound indicates the path does not resolve to an existing file.
	ErrFileNotFound = errors.New("file not found")

	// ErrParse indicates the file content could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedFormat indicates a declared format other than csv or xlsx.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
