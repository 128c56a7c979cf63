package server

import (
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

const fixtureBaseURL = "http://ticketing.test"

// inMemoryTransport serves requests straight from the Fiber app, no listener involved.
type inMemoryTransport struct {
	t   *testing.T
	srv *ServerHTTP
}

func (m *inMemoryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.t.Helper()
	return m.srv.app.Test(req, -1)
}

// ServerTestFixture runs requests against a fully initialized ServerHTTP over an
// in-memory transport.
type ServerTestFixture struct {
	t         *testing.T
	srv       *ServerHTTP
	transport http.RoundTripper
}

// Client returns a resty client rooted at the server. Transport errors fail the test.
func (f *ServerTestFixture) Client() *resty.Client {
	f.t.Helper()
	return f.newClient(fixtureBaseURL)
}

// APIClient returns a client rooted at the public /api/v1 group.
func (f *ServerTestFixture) APIClient() *resty.Client {
	f.t.Helper()
	return f.newClient(fixtureBaseURL + "/api/v1")
}

// AdminClient returns a client rooted at /api/v1/admin that already carries the
// admin bearer token the server was configured with.
func (f *ServerTestFixture) AdminClient() *resty.Client {
	f.t.Helper()
	return f.newClient(fixtureBaseURL + "/api/v1/admin").SetAuthToken(f.srv.cfg.AdminBearerToken)
}

func (f *ServerTestFixture) newClient(baseURL string) *resty.Client {
	c := resty.New().SetBaseURL(baseURL)
	c.OnError(func(_ *resty.Request, err error) {
		require.NoError(f.t, err, "HTTP request ended with unexpected error")
	})
	c.GetClient().Transport = f.transport
	return c
}

// NewServerTestFixture builds the server from opts and wires the in-memory transport.
// Panics like New when no ticketing provider is given.
func NewServerTestFixture(t *testing.T, opts ...ServerOption) *ServerTestFixture {
	srv := New(opts...)
	return &ServerTestFixture{
		t:         t,
		srv:       srv,
		transport: &inMemoryTransport{t: t, srv: srv},
	}
}
