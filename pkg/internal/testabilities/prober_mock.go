package testabilities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// ProberMockExpectations maps candidate URLs to the error their probe returns.
// URLs that are not listed are reachable.
type ProberMockExpectations struct {
	Failures     map[string]error
	ExpectedURLs []string
}

// ProberMock records every probed URL in order.
type ProberMock struct {
	t            *testing.T
	expectations ProberMockExpectations
	probed       []string
}

// Probe records the URL and returns the configured failure, if any.
func (m *ProberMock) Probe(ctx context.Context, url string) error {
	m.t.Helper()
	m.probed = append(m.probed, url)
	return m.expectations.Failures[url]
}

// Probed returns the probed URLs in call order.
func (m *ProberMock) Probed() []string {
	return m.probed
}

// AssertCalled verifies the probes happened exactly in the expected order.
func (m *ProberMock) AssertCalled() {
	m.t.Helper()
	require.Equal(m.t, m.expectations.ExpectedURLs, m.probed, "Discrepancy between expected and actual probe sequence")
}

// NewProberMock creates a new ProberMock with the given expectations.
func NewProberMock(t *testing.T, expectations ProberMockExpectations) *ProberMock {
	return &ProberMock{t: t, expectations: expectations}
}
