package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/poiesic/polingest/tabular"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var errInvalidFileType = errors.New("invalid file type: only csv and xlsx files are allowed")

// saveUpload checks the upload's extension against its sniffed content and
// copies it into dir under a unique name. Returns the stored path.
func saveUpload(fh *multipart.FileHeader, dir string) (string, error) {
	format, err := tabular.FormatFromPath(fh.Filename)
	if err != nil {
		return "", errInvalidFileType
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return "", err
	}
	if !contentMatches(format, detected) {
		return "", fmt.Errorf("%w: %s content in a .%s file", errInvalidFileType, detected.String(), format)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%d.%s", strings.ReplaceAll(uuid.NewString(), "-", ""), time.Now().UnixMilli(), format)
	path := filepath.Join(dir, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// contentMatches reports whether sniffed content fits the declared format.
// CSV is any text; undetectable content is let through to the parser.
func contentMatches(format tabular.Format, detected *mimetype.MIME) bool {
	switch format {
	case tabular.FormatXLSX:
		return detected.Is(xlsxMIME)
	case tabular.FormatCSV:
		if detected.Is("application/octet-stream") {
			return true
		}
		for m := detected; m != nil; m = m.Parent() {
			if m.Is("text/plain") {
				return true
			}
		}
	}
	return false
}
