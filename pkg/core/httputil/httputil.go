package httputil

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// HTTPError describes a response that arrived but carried a non-2xx status.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// CheckResponse returns an *HTTPError when the response status is outside the 2xx range.
func CheckResponse(res *resty.Response) error {
	if res.IsSuccess() {
		return nil
	}
	return &HTTPError{
		Method:     res.Request.Method,
		URL:        res.Request.URL,
		StatusCode: res.StatusCode(),
		Body:       res.Body(),
	}
}
