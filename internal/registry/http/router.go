package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/broadvale/registry/internal/registry/service"
	"github.com/broadvale/registry/internal/registry/store"
	"github.com/broadvale/registry/pkg/httpx"
	"github.com/broadvale/registry/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store                 store.Store
	AuthService           *service.AuthService
	MembershipService     *service.MembershipService
	MaintainershipService *service.MaintainershipService
	ListingService        *service.ListingService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ApplyRoutes registers all endpoints. Call after the service fields are set.
func (r *Router) ApplyRoutes() {
	// Bearer auth is optional on every route; handlers that need a caller
	// refuse anonymous requests themselves.
	r.middlewares = append(r.middlewares, authnMiddleware(r.AuthService))

	r.registerNamespaces()
	r.registerMembers()
	r.registerMaintainerships()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerNamespaces() {
	h := &NamespacesHandler{Listing: r.ListingService}

	// Public directory reads - high limit by IP
	r.Mux.Handle("GET /v1/namespaces",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/namespaces/namespace/{ref}/members",
		httpx.Chain(http.HandlerFunc(h.HandleMembers),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/namespaces/namespace/{ref}/memberships",
		httpx.Chain(http.HandlerFunc(h.HandleMemberships),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Caller-scoped read - lenient limit by user
	r.Mux.Handle("GET /v1/namespaces/namespace/{ref}/memberships/pending",
		httpx.Chain(http.HandlerFunc(h.HandlePendingMemberships),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{Membership: r.MembershipService}

	// Mutations - moderate limit by user. The literal "invitation" segment
	// takes precedence over the {invitee} wildcard.
	r.Mux.Handle("POST /v1/namespaces/namespace/{ref}/members/{invitee}",
		httpx.Chain(http.HandlerFunc(h.HandleInvite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/namespaces/namespace/{ref}/members/{invitee}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/namespaces/namespace/{ref}/members/invitation",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/namespaces/namespace/{ref}/members/invitation",
		httpx.Chain(http.HandlerFunc(h.HandleDecline),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerMaintainerships() {
	h := &MaintainershipsHandler{Maintainer: r.MaintainershipService}

	r.Mux.Handle("GET /v1/namespaces/namespace/{ref}/maintainerships/pending",
		httpx.Chain(http.HandlerFunc(h.HandlePending),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/namespaces/namespace/{ref}/maintainerships",
		httpx.Chain(http.HandlerFunc(h.HandleConfirmed),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient limits, monitors poll these
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
