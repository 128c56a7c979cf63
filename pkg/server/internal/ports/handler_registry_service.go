package ports

import (
	"github.com/4chain-ag/go-ticketing-sdk/pkg/server/internal/app"
	"github.com/gofiber/fiber/v2"
)

// TicketingProvider combines every capability of the ticketing client the HTTP API relies on.
type TicketingProvider interface {
	app.GatewayURLProvider
	app.EventsProvider
	app.TicketsProvider
	app.BackendProvider
	app.StorageProvider
	NetworkProvider
}

// HandlerRegistryService defines the main point for registering HTTP handler dependencies.
// It acts as a central registry for mapping API endpoints to their handler implementations.
type HandlerRegistryService struct {
	gateway *ResolveGatewayURLHandler
	events  *EventsHandler
	tickets *TicketsHandler
	backend *BackendHandler
	storage *StorageHandler
	network *NetworkHandler
}

// RegisterPublic mounts the read-only routes on the given router.
func (h *HandlerRegistryService) RegisterPublic(r fiber.Router) {
	r.Get("/network", h.network.Handle)
	r.Get("/gateway/resolve", h.gateway.Handle)

	r.Post("/events/batch", h.events.GetEvents)
	r.Get("/events/:id", h.events.GetEvent)
	r.Get("/events/:id/categories", h.events.GetCategories)

	r.Post("/tickets/batch", h.tickets.GetTickets)
	r.Get("/tickets/:id", h.tickets.GetTicket)
	r.Get("/marketplace/tickets/:id", h.tickets.GetListedTicket)

	r.Get("/countries", h.backend.Countries)
	r.Get("/places", h.backend.Places)
	r.Post("/search/events", h.backend.SearchEvents)
}

// RegisterAdmin mounts the storage administration routes on the given router.
// The router is expected to enforce admin authorization.
func (h *HandlerRegistryService) RegisterAdmin(r fiber.Router) {
	r.Post("/storage/upload", h.storage.Upload)
	r.Post("/storage/uploadImage", h.storage.UploadImage)
	r.Post("/storage/uploadBatch", h.storage.UploadBatch)
	r.Delete("/storage", h.storage.Delete)
}

// NewHandlerRegistryService creates and returns a new HandlerRegistryService instance.
// It initializes all handler implementations with their required dependencies.
func NewHandlerRegistryService(provider TicketingProvider, storageAPIKey string) *HandlerRegistryService {
	return &HandlerRegistryService{
		gateway: NewResolveGatewayURLHandler(provider),
		events:  NewEventsHandler(provider),
		tickets: NewTicketsHandler(provider),
		backend: NewBackendHandler(provider),
		storage: NewStorageHandler(provider, storageAPIKey),
		network: NewNetworkHandler(provider),
	}
}
