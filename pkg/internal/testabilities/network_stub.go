package testabilities

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// ErrTestUnreachableHost is returned by the NetworkStub for hosts marked as unreachable.
var ErrTestUnreachableHost = errors.New("dial tcp: connection refused")

// NetworkStub is an http.RoundTripper that routes requests by host to in-memory Fiber apps.
// Hosts without a registered app, or marked as unreachable, fail with a transport error.
type NetworkStub struct {
	t        *testing.T
	mu       sync.Mutex
	hosts    map[string]*fiber.App
	down     map[string]bool
	requests []string
}

// Host returns the Fiber app serving the given host, creating it on first use.
func (n *NetworkStub) Host(host string) *fiber.App {
	n.mu.Lock()
	defer n.mu.Unlock()

	app, ok := n.hosts[host]
	if !ok {
		app = fiber.New()
		n.hosts[host] = app
	}
	return app
}

// Unreachable marks the host as unreachable: every request to it fails at the transport level.
func (n *NetworkStub) Unreachable(host string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.down[host] = true
}

// Requests returns the "METHOD host/path" lines of every request seen so far, in order.
func (n *NetworkStub) Requests() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.requests...)
}

// RoundTrip dispatches the request to the app registered for its host.
func (n *NetworkStub) RoundTrip(req *http.Request) (*http.Response, error) {
	n.t.Helper()

	n.mu.Lock()
	n.requests = append(n.requests, req.Method+" "+req.URL.Host+req.URL.Path)
	down := n.down[req.URL.Host]
	app, ok := n.hosts[req.URL.Host]
	n.mu.Unlock()

	if down {
		return nil, ErrTestUnreachableHost
	}
	if !ok {
		return nil, fmt.Errorf("dial tcp: lookup %s: no such host", req.URL.Host)
	}
	return app.Test(req, -1)
}

// Client returns a resty client whose transport is the stub.
func (n *NetworkStub) Client() *resty.Client {
	c := resty.New()
	c.GetClient().Transport = n
	return c
}

// NewNetworkStub creates an empty network stub.
func NewNetworkStub(t *testing.T) *NetworkStub {
	return &NetworkStub{
		t:     t,
		hosts: make(map[string]*fiber.App),
		down:  make(map[string]bool),
	}
}
