package main

import (
	"flag"
	"path/filepath"
	"slices"
	"strings"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/appconfig"
	"github.com/google/uuid"
	"github.com/gookit/slog"
)

func main() {
	regenToken := flag.Bool("regen-token", false, "Regenerate admin bearer token")
	flag.BoolVar(regenToken, "t", false, "Regenerate admin bearer token (shorthand)")

	outputFile := flag.String("output-file", "config.yaml", "Output configuration file path")
	flag.StringVar(outputFile, "o", "config.yaml", "Output configuration file path (shorthand)")

	flag.Parse()

	cfg := appconfig.Defaults()
	if *regenToken {
		cfg.AdminBearerToken = uuid.NewString()
	}

	ext := strings.TrimPrefix(filepath.Ext(*outputFile), ".")
	if !slices.Contains(appconfig.SupportedExts(), ext) {
		slog.Fatalf("Unsupported output file extension: %q (supported: %s)", ext, strings.Join(appconfig.SupportedExts(), ", "))
	}

	if err := appconfig.Export(&cfg, *outputFile); err != nil {
		slog.Fatalf("Error writing configuration: %v", err)
	}

	slog.Infof("Configuration written to %s", *outputFile)
}
