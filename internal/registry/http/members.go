package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/broadvale/registry/internal/registry/domain"
	"github.com/broadvale/registry/internal/registry/service"
)

// MembersHandler serves the membership lifecycle: invite, remove, and the
// invitee's accept/decline decision.
type MembersHandler struct {
	Membership *service.MembershipService
}

// HandleInvite invites {invitee} to join the namespace.
func (h *MembersHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, host, ok := refParts(w, r)
	if !ok {
		return
	}
	invitee := r.PathValue("invitee")

	msg, err := h.Membership.Invite(ctx, userFrom(ctx), invitee, name, host)
	if err != nil {
		if writeActingError(w, err, name, host) {
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("%s not found.", invitee))
			return
		}
		writeInternal(ctx, w, err)
		return
	}
	writeMessage(w, msg)
}

// HandleRemove revokes {invitee}'s active membership.
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, host, ok := refParts(w, r)
	if !ok {
		return
	}
	invitee := r.PathValue("invitee")

	msg, err := h.Membership.Remove(ctx, userFrom(ctx), invitee, name, host)
	if err != nil {
		if writeActingError(w, err, name, host) {
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("%s does not exist.", invitee))
			return
		}
		writeInternal(ctx, w, err)
		return
	}
	writeMessage(w, msg)
}

// HandleAccept activates the caller's pending invitation.
func (h *MembersHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Membership.Accept)
}

// HandleDecline turns the caller's pending invitation down.
func (h *MembersHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Membership.Decline)
}

func (h *MembersHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, user *domain.User, name, host string) (string, error),
) {
	ctx := r.Context()

	name, host, ok := refParts(w, r)
	if !ok {
		return
	}

	msg, err := op(ctx, userFrom(ctx), name, host)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			writeError(w, http.StatusForbidden,
				"You must be logged in to perform this action")
			return
		}
		if errors.Is(err, service.ErrInvitationNotFound) {
			writeError(w, http.StatusNotFound, "invitation not found")
			return
		}
		writeInternal(ctx, w, err)
		return
	}
	writeMessage(w, msg)
}
