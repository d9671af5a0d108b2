package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/broadvale/registry/internal/registry/service"
)

// NamespacesHandler serves the read-only namespace directory endpoints.
type NamespacesHandler struct {
	Listing *service.ListingService
}

// HandleList returns the names of all active namespaces.
func (h *NamespacesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	names, err := h.Listing.Namespaces(ctx)
	if err != nil {
		writeInternal(ctx, w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeObjects(w, names)
}

// HandleMembers returns the names of a namespace's active members.
func (h *NamespacesHandler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, host, ok := refParts(w, r)
	if !ok {
		return
	}

	members, err := h.Listing.Members(ctx, name, host)
	if err != nil {
		if errors.Is(err, service.ErrNamespaceNotFound) {
			writeError(w, http.StatusNotFound,
				fmt.Sprintf("%s@%s does not exist.", name, host))
			return
		}
		writeInternal(ctx, w, err)
		return
	}
	if members == nil {
		members = []string{}
	}
	writeObjects(w, members)
}

// HandleMemberships returns the namespaces a user is an active member of.
// The name half of the ref segment is the username; the host half is carried
// by the route shape but plays no part in the lookup.
func (h *NamespacesHandler) HandleMemberships(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, _, ok := refParts(w, r)
	if !ok {
		return
	}

	names, err := h.Listing.Memberships(ctx, username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("%s not found.", username))
			return
		}
		writeInternal(ctx, w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeObjects(w, names)
}

// HandlePendingMemberships returns the namespaces holding an undecided
// invitation for the caller.
func (h *NamespacesHandler) HandlePendingMemberships(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, _, ok := refParts(w, r); !ok {
		return
	}

	namespaces, err := h.Listing.PendingMemberships(ctx, userFrom(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			writeError(w, http.StatusForbidden,
				"You must be logged in to perform this action")
			return
		}
		writeInternal(ctx, w, err)
		return
	}

	refs := make([]string, 0, len(namespaces))
	for _, ns := range namespaces {
		refs = append(refs, ns.Ref())
	}
	writeObjects(w, refs)
}
