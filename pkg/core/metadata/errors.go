package metadata

import (
	"errors"
	"fmt"
)

// ErrMetadataFetch is matched by errors.Is for every *MetadataFetchError.
var ErrMetadataFetch = errors.New("metadata fetch failed")

// ErrBatchAbort is matched by errors.Is for every *BatchAbortError.
var ErrBatchAbort = errors.New("batch aborted")

// MetadataFetchError is returned when the metadata document behind a resolved URL
// could not be retrieved or decoded. Err carries the transport error, the
// *httputil.HTTPError of a non-2xx response, or the JSON decoding error.
type MetadataFetchError struct {
	URL string
	Err error
}

func (e *MetadataFetchError) Error() string {
	return fmt.Sprintf("fetch metadata from %s: %v", e.URL, e.Err)
}

func (e *MetadataFetchError) Unwrap() error { return e.Err }

func (e *MetadataFetchError) Is(target error) bool { return target == ErrMetadataFetch }

// BatchAbortError is returned by fail-fast batches. It names the position and the
// identifier of the first item that failed, no partial result accompanies it.
type BatchAbortError struct {
	Index int
	ID    string
	Err   error
}

func (e *BatchAbortError) Error() string {
	return fmt.Sprintf("batch aborted at index %d (id %s): %v", e.Index, e.ID, e.Err)
}

func (e *BatchAbortError) Unwrap() error { return e.Err }

func (e *BatchAbortError) Is(target error) bool { return target == ErrBatchAbort }
