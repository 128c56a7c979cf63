package gateway_test

import (
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/httputil"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/internal/testabilities"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestResolver_WithHTTPProber_SkipsUnreachableGateway(t *testing.T) {
	// given:
	network := testabilities.NewNetworkStub(t)
	network.Unreachable("g1")
	network.Host("g2").Get("/abc/metadata.json", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"name": "event"})
	})

	resolver := gateway.NewResolver(
		gateway.GatewayList{"https://g1/", "https://g2/"},
		gateway.NewHTTPProber(network.Client()),
	)

	// when:
	url, err := resolver.Resolve(t.Context(), "ipfs://abc/metadata.json")

	// then:
	require.NoError(t, err)
	require.Equal(t, "https://g2/abc/metadata.json", url)
	require.Equal(t, []string{
		"GET g1/abc/metadata.json",
		"GET g2/abc/metadata.json",
	}, network.Requests())
}

func TestHTTPProber_Probe(t *testing.T) {
	tests := map[string]struct {
		status      int
		expectedErr bool
	}{
		"2xx response counts as reachable.": {
			status: fiber.StatusOK,
		},
		"4xx response counts as unreachable.": {
			status:      fiber.StatusNotFound,
			expectedErr: true,
		},
		"5xx response counts as unreachable.": {
			status:      fiber.StatusBadGateway,
			expectedErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			network := testabilities.NewNetworkStub(t)
			network.Host("gw").Get("/cid", func(c *fiber.Ctx) error {
				return c.SendStatus(tc.status)
			})
			prober := gateway.NewHTTPProber(network.Client())

			// when:
			err := prober.Probe(t.Context(), "https://gw/cid")

			// then:
			if !tc.expectedErr {
				require.NoError(t, err)
				return
			}

			var httpErr *httputil.HTTPError
			require.ErrorAs(t, err, &httpErr)
			require.Equal(t, tc.status, httpErr.StatusCode)
		})
	}
}

func TestHTTPProber_Probe_TransportError(t *testing.T) {
	// given:
	network := testabilities.NewNetworkStub(t)
	network.Unreachable("gw")
	prober := gateway.NewHTTPProber(network.Client())

	// when:
	err := prober.Probe(t.Context(), "https://gw/cid")

	// then:
	require.ErrorIs(t, err, testabilities.ErrTestUnreachableHost)
}
