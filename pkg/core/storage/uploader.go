package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/gookit/slog"
)

// Client is a credentialed content-addressed store.
type Client interface {
	Store(ctx context.Context, apiKey string, metadata any) (gateway.ContentURI, error)
	StoreBlob(ctx context.Context, apiKey string, data []byte, contentType string) (gateway.ContentURI, error)
	Delete(ctx context.Context, apiKey, cid string) error
}

// UploadObserver is notified about the outcome of every upload.
type UploadObserver interface {
	ObserveUpload(err error)
}

// UploaderOption configures optional Uploader collaborators.
type UploaderOption func(*Uploader)

// WithUploadObserver registers an observer notified about every upload outcome.
func WithUploadObserver(o UploadObserver) UploaderOption {
	return func(u *Uploader) {
		u.observer = o
	}
}

// Uploader pushes metadata to the storage network and removes it again.
type Uploader struct {
	client   Client
	observer UploadObserver
}

// Upload stores one metadata object and returns its content URI.
func (u *Uploader) Upload(ctx context.Context, apiKey string, metadata any) (gateway.ContentURI, error) {
	return u.upload(0, func() (gateway.ContentURI, error) {
		return u.client.Store(ctx, apiKey, metadata)
	})
}

// UploadBlob stores raw bytes, e.g. an event image, and returns their content URI.
func (u *Uploader) UploadBlob(ctx context.Context, apiKey string, data []byte, contentType string) (gateway.ContentURI, error) {
	return u.upload(0, func() (gateway.ContentURI, error) {
		return u.client.StoreBlob(ctx, apiKey, data, contentType)
	})
}

// UploadBatch stores the items one after another and returns their URIs in input order.
// The first failure stops the batch: later items are not attempted and items already
// stored stay stored.
func (u *Uploader) UploadBatch(ctx context.Context, apiKey string, items []any) ([]gateway.ContentURI, error) {
	uris := make([]gateway.ContentURI, 0, len(items))
	for i, item := range items {
		uri, err := u.upload(i, func() (gateway.ContentURI, error) {
			return u.client.Store(ctx, apiKey, item)
		})
		if err != nil {
			if i > 0 {
				slog.Warnf("batch upload stopped at item %d, %d items stay stored", i, i)
			}
			return nil, err
		}
		uris = append(uris, uri)
	}
	return uris, nil
}

// Delete removes the content addressed by uri. The content identifier is the third
// "/"-separated segment of the URI, e.g. "bafy" in "ipfs://bafy/metadata.json".
func (u *Uploader) Delete(ctx context.Context, apiKey, uri string) error {
	cid, err := ContentID(uri)
	if err != nil {
		return err
	}
	if err := u.client.Delete(ctx, apiKey, cid); err != nil {
		return fmt.Errorf("delete %s: %w", cid, err)
	}

	slog.Infof("deleted %s", cid)
	return nil
}

func (u *Uploader) upload(index int, store func() (gateway.ContentURI, error)) (gateway.ContentURI, error) {
	uri, err := store()
	if u.observer != nil {
		u.observer.ObserveUpload(err)
	}
	if err != nil {
		return "", &UploadError{Index: index, Err: err}
	}

	slog.Infof("uploaded item %d to %s", index, uri)
	return uri, nil
}

// ContentID extracts the content identifier from the third "/"-separated segment of uri.
func ContentID(uri string) (string, error) {
	segments := strings.Split(uri, "/")
	if len(segments) < 3 || segments[2] == "" {
		return "", &InvalidURIShapeError{URI: uri}
	}
	return segments[2], nil
}

// NewUploader creates an Uploader over the given storage client.
// Panics if the client is nil.
func NewUploader(client Client, opts ...UploaderOption) *Uploader {
	if client == nil {
		panic("storage client is nil")
	}

	u := &Uploader{client: client}
	for _, o := range opts {
		o(u)
	}
	return u
}
