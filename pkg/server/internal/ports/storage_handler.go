package ports

import (
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/ports/dto"
	"github.com/gofiber/fiber/v2"
)

// XStorageAPIKeyHeader carries the storage network API key of the caller.
// Without it the server falls back to its configured key.
const XStorageAPIKeyHeader = "X-Storage-Api-Key"

// StorageHandler stores and removes content on the storage network on behalf of administrators.
type StorageHandler struct {
	service *app.StorageService
}

// Upload handles POST /admin/storage/upload with a JSON metadata document as body.
func (h *StorageHandler) Upload(c *fiber.Ctx) error {
	var doc map[string]any
	if err := c.BodyParser(&doc); err != nil {
		return NewRequestBodyParserError(err)
	}

	uri, err := h.service.Upload(c.UserContext(), c.Get(XStorageAPIKeyHeader), doc)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URI: string(uri)})
}

// UploadImage handles POST /admin/storage/uploadImage with an octet-stream body.
// The image MIME type is taken from the `contentType` query parameter.
func (h *StorageHandler) UploadImage(c *fiber.Ctx) error {
	if !c.Is(fiber.MIMEOctetStream) {
		return NewUnsupportedContentTypeError(fiber.MIMEOctetStream)
	}

	uri, err := h.service.UploadImage(c.UserContext(), c.Get(XStorageAPIKeyHeader), c.Body(), c.Query("contentType"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URI: string(uri)})
}

// UploadBatch handles POST /admin/storage/uploadBatch.
func (h *StorageHandler) UploadBatch(c *fiber.Ctx) error {
	var body dto.UploadBatchRequest
	if err := c.BodyParser(&body); err != nil {
		return NewRequestBodyParserError(err)
	}

	uris, err := h.service.UploadBatch(c.UserContext(), c.Get(XStorageAPIKeyHeader), body.Documents)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadBatchResponse{URIs: uriStrings(uris)})
}

// Delete handles DELETE /admin/storage?uri=.
func (h *StorageHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Get(XStorageAPIKeyHeader), c.Query("uri")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func uriStrings(uris []gateway.ContentURI) []string {
	out := make([]string, len(uris))
	for i, u := range uris {
		out[i] = string(u)
	}
	return out
}

// NewStorageHandler constructs a new StorageHandler with the given provider.
// defaultAPIKey is used for requests without the X-Storage-Api-Key header.
// Panics if the provider is nil.
func NewStorageHandler(provider app.StorageProvider, defaultAPIKey string) *StorageHandler {
	if provider == nil {
		panic("storage provider cannot be nil")
	}
	return &StorageHandler{service: app.NewStorageService(provider, defaultAPIKey)}
}

// NewUnsupportedContentTypeError returns an error indicating that the submitted content type is not supported.
func NewUnsupportedContentTypeError(expected string) app.Error {
	msg := "Unsupported content type. Expected: " + expected + "."
	return app.NewIncorrectInputError(msg, msg)
}
