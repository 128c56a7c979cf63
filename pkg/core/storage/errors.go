package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrUpload is matched by errors.Is for every *UploadError.
	ErrUpload = errors.New("upload failed")

	// ErrInvalidURIShape is matched by errors.Is for every *InvalidURIShapeError.
	ErrInvalidURIShape = errors.New("invalid uri shape")
)

// UploadError is returned when the storage network rejected or failed a put.
// Index is the position of the item in a batch upload, zero for single uploads.
type UploadError struct {
	Index int
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload item %d: %v", e.Index, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

func (e *UploadError) Is(target error) bool { return target == ErrUpload }

// InvalidURIShapeError is returned by Delete when the content identifier cannot be
// extracted from the URI.
type InvalidURIShapeError struct {
	URI string
}

func (e *InvalidURIShapeError) Error() string {
	return fmt.Sprintf("delete %q: no content identifier in the third path segment", e.URI)
}

func (e *InvalidURIShapeError) Is(target error) bool { return target == ErrInvalidURIShape }

// APIError is the error body returned by the storage network.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storage api: status %d: %s: %s", e.StatusCode, e.Name, e.Message)
}
