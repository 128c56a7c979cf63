package metadata

import (
	"context"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
	"github.com/gookit/slog"
)

// URLResolver turns a content URI into a reachable HTTP URL.
type URLResolver interface {
	Resolve(ctx context.Context, uri gateway.ContentURI) (string, error)
	Gateways() gateway.GatewayList
}

// Merger combines on-chain records with off-chain metadata into display-ready views.
type Merger struct {
	resolver URLResolver
}

// Merge builds the merged view in a fixed order: off-chain fields, then on-chain
// fields on top, then the image content URI resolved to a gateway URL, then the
// on-chain numeric status replaced with its label. An off-chain status is kept as is.
//
// When no gateway is reachable for the image it is substituted with the first
// configured gateway without probing, so the view stays renderable.
func (m *Merger) Merge(ctx context.Context, raw, offchain Record) Record {
	out := Overlay(raw, offchain)

	if image, ok := out[KeyImage].(string); ok && gateway.IsContentURI(image) {
		out[KeyImage] = m.resolveImage(ctx, gateway.ContentURI(image))
	}
	if status, ok := raw[KeyStatus]; ok {
		out[KeyStatus] = LabelStatus(status)
	}
	return out
}

func (m *Merger) resolveImage(ctx context.Context, uri gateway.ContentURI) string {
	url, err := m.resolver.Resolve(ctx, uri)
	if err == nil {
		return url
	}

	gateways := m.resolver.Gateways()
	if len(gateways) == 0 {
		return string(uri)
	}
	slog.Warnf("image %s not reachable on any gateway, using %s: %v", uri, gateways[0], err)
	return gateway.MakeURL(uri, gateways[0])
}

// NewMerger creates a Merger resolving images with the given resolver.
// Panics if the resolver is nil.
func NewMerger(resolver URLResolver) *Merger {
	if resolver == nil {
		panic("url resolver is nil")
	}
	return &Merger{resolver: resolver}
}
