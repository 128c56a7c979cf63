package middleware

import (
	"fmt"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/gofiber/fiber/v2"
)

// ReadBodyLimit32MB is the default size limit (in bytes) of octet-stream uploads.
// Images stored on the storage network are expected to stay well below it.
const ReadBodyLimit32MB = 32 * 1024 * 1024

// LimitOctetStreamBodyMiddleware is a Fiber middleware that rejects requests with
// Content-Type: application/octet-stream whose body is empty or larger than the limit.
// Other content types pass through untouched.
func LimitOctetStreamBodyMiddleware(octetStreamLimit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !c.Is(fiber.MIMEOctetStream) {
			return c.Next()
		}

		size := int64(len(c.Body()))
		switch {
		case size == 0:
			return NewEmptyRequestBodyError()
		case size > octetStreamLimit:
			return NewBodySizeLimitExceededError(octetStreamLimit)
		}
		return c.Next()
	}
}

// NewBodySizeLimitExceededError returns an error indicating that the request body exceeds the allowed maximum size.
func NewBodySizeLimitExceededError(limit int64) app.Error {
	msg := fmt.Sprintf("The submitted octet-stream exceeds the maximum allowed size: %d bytes.", limit)
	return app.NewIncorrectInputError(msg, msg)
}

// NewEmptyRequestBodyError returns an error indicating that the request body is empty, which is not allowed.
func NewEmptyRequestBodyError() app.Error {
	const msg = "Unable to process request with content type octet-stream. The request body is empty."
	return app.NewIncorrectInputError(msg, msg)
}
