package server_test

import (
	"testing"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/metrics"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/testabilities"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNew_PanicsWithoutTicketing(t *testing.T) {
	require.Panics(t, func() { server.New() })
}

func TestServerHTTP_ExposesMetrics(t *testing.T) {
	// given:
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	collector.ObserveProbe("https://ipfs.io/ipfs/", nil)

	stub := testabilities.NewTestTicketingStub(t)
	fixture := server.NewServerTestFixture(t,
		server.WithTicketing(stub),
		server.WithMetricsGatherer(registry),
	)

	// when:
	res, _ := fixture.Client().R().Get("/metrics")

	// then:
	require.Equal(t, fiber.StatusOK, res.StatusCode())
	require.Contains(t, res.String(), `ticketing_gateway_probes_total{gateway="https://ipfs.io/ipfs/",outcome="success"} 1`)
	stub.AssertProvidersState()
}

func TestServerHTTP_OperationalEndpoints(t *testing.T) {
	tests := map[string]struct {
		path string
	}{
		"Liveness probe":    {path: "/livez"},
		"Readiness probe":   {path: "/readyz"},
		"Monitor dashboard": {path: "/monitor"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			stub := testabilities.NewTestTicketingStub(t)
			fixture := server.NewServerTestFixture(t, server.WithTicketing(stub))

			// when:
			res, _ := fixture.Client().R().Get(tc.path)

			// then:
			require.Equal(t, fiber.StatusOK, res.StatusCode())
			stub.AssertProvidersState()
		})
	}
}

func TestServerHTTP_UnknownRoute(t *testing.T) {
	// given:
	stub := testabilities.NewTestTicketingStub(t)
	fixture := server.NewServerTestFixture(t, server.WithTicketing(stub))

	// when:
	res, _ := fixture.Client().R().Get("/api/v1/unknown")

	// then:
	require.Equal(t, fiber.StatusNotFound, res.StatusCode())
	stub.AssertProvidersState()
}

func TestServerHTTP_SocketAddr(t *testing.T) {
	// given:
	cfg := server.DefaultConfig
	cfg.Addr = "0.0.0.0"
	cfg.Port = 8080

	// when:
	srv := server.New(server.WithConfig(cfg), server.WithTicketing(testabilities.NewTestTicketingStub(t)))

	// then:
	require.Equal(t, "0.0.0.0:8080", srv.SocketAddr())
}

func TestServerHTTP_APIClientReachesPublicRoutes(t *testing.T) {
	// given:
	stub := testabilities.NewTestTicketingStub(t)
	fixture := server.NewServerTestFixture(t, server.WithTicketing(stub))

	// when:
	var network map[string]string
	res, _ := fixture.APIClient().R().SetResult(&network).Get("/network")

	// then:
	require.Equal(t, fiber.StatusOK, res.StatusCode())
	require.Equal(t, testabilities.TestNetwork.ChainID, network["chainId"])
	require.Equal(t, testabilities.TestNetwork.Label, network["label"])
	stub.AssertProvidersState()
}

func TestServerHTTP_AdminClientUsesConfiguredToken(t *testing.T) {
	// given:
	storage := testabilities.NewStorageProviderMock(t, testabilities.StorageProviderMockExpectations{
		DeleteCall: true,
	})
	stub := testabilities.NewTestTicketingStub(t, testabilities.WithStorageProvider(storage))
	fixture := server.NewServerTestFixture(t,
		server.WithTicketing(stub),
		server.WithAdminBearerToken("d8b7e5c0-2f4a-4b1e-9a63-0c5e7f1d2a34"),
		server.WithStorageAPIKey("configured-key"),
	)

	// when:
	res, _ := fixture.AdminClient().R().
		SetQueryParam("uri", "ipfs://bafyevent/metadata.json").
		Delete("/storage")

	// then:
	require.Equal(t, fiber.StatusNoContent, res.StatusCode())
	require.Equal(t, "configured-key", storage.APIKey())
	stub.AssertProvidersState()
}
