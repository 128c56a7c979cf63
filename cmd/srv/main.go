package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/appconfig"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/listeners"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/metrics"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server"
	"github.com/4chain-ag/go-ticketing-sdk/pkg/ticketing"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gookit/slog"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configFile := flag.String("config", appconfig.DefaultConfigFilePath, "Path to the configuration file")
	flag.StringVar(configFile, "c", appconfig.DefaultConfigFilePath, "Path to the configuration file (shorthand)")

	dotenv := flag.String("dotenv", ".env", "Optional .env file loaded into the environment before the configuration")
	watch := flag.String("watch", "", "Comma separated contract event names to log, e.g. EventCreated,TicketsBought")
	printConfig := flag.Bool("print-config", false, "Print the loaded configuration with secrets masked")
	flag.Parse()

	if err := godotenv.Load(*dotenv); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warnf("Failed to load %s: %v", *dotenv, err)
	}

	loader := appconfig.NewLoader(appconfig.EnvPrefix)
	if err := loader.SetConfigFilePath(*configFile); err != nil {
		slog.Fatalf("Invalid config file path: %v", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		slog.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogger(cfg.Log)

	if *printConfig {
		if err := appconfig.PrettyPrintAs(os.Stdout, cfg, "yaml"); err != nil {
			slog.Errorf("Failed to print configuration: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chain, err := ethclient.DialContext(ctx, cfg.Chain.RPCURL)
	if err != nil {
		slog.Fatalf("Failed to connect to %s: %v", cfg.Chain.RPCURL, err)
	}
	defer chain.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	client, err := ticketing.NewDefaultClient(cfg, chain, ticketing.WithMetrics(metrics.NewCollector(registry)))
	if err != nil {
		slog.Fatalf("Failed to create ticketing client: %v", err)
	}

	for _, name := range splitNames(*watch) {
		go watchEvent(ctx, client, name)
	}

	srv := server.New(
		server.WithConfig(server.Config{
			AppName:               cfg.AppName,
			Port:                  cfg.Port,
			Addr:                  cfg.Addr,
			ServerHeader:          cfg.ServerHeader,
			AdminBearerToken:      cfg.AdminBearerToken,
			StorageAPIKey:         cfg.Storage.APIKey,
			OctetStreamLimit:      server.DefaultConfig.OctetStreamLimit,
			ConnectionReadTimeout: server.DefaultConfig.ConnectionReadTimeout,
		}),
		server.WithTicketing(client),
		server.WithMetricsGatherer(registry),
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Errorf("HTTP server shutdown failed: %v", err)
		}
	}()

	slog.Infof("Ticketing API listening on %s (chain %s, %s)", srv.SocketAddr(), cfg.Chain.Label, cfg.Chain.ChainID)
	if err := srv.ListenAndServe(ctx); err != nil {
		slog.Fatalf("HTTP server failed: %v", err)
	}
	slog.Info("HTTP server stopped")
}

func setupLogger(cfg appconfig.Log) {
	slog.SetLogLevel(slog.LevelByName(cfg.Level))
	if cfg.JSON {
		slog.SetFormatter(slog.NewJSONFormatter())
	}
}

func watchEvent(ctx context.Context, client *ticketing.Client, name string) {
	err := client.Listen(ctx, name, func(ev listeners.Event) {
		slog.WithFields(slog.M{
			"event":    ev.Name,
			"contract": ev.Contract.Hex(),
			"block":    ev.Log.BlockNumber,
			"tx":       ev.Log.TxHash.Hex(),
		}).Info("contract event")
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Errorf("Watching %s stopped: %v", name, err)
	}
}

func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
