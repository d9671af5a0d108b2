package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/broadvale/registry/internal/registry/service"
	"github.com/broadvale/registry/pkg/slogx"
)

// splitRef splits a name@host path segment. Namespaces are always addressed
// in this combined form; a segment without the separator matches no namespace.
func splitRef(ref string) (name, host string, ok bool) {
	name, host, ok = strings.Cut(ref, "@")
	if !ok || name == "" || host == "" {
		return "", "", false
	}
	return name, host, true
}

// refParts reads the {ref} path value and answers the request itself when the
// segment is malformed.
func refParts(w http.ResponseWriter, r *http.Request) (name, host string, ok bool) {
	name, host, ok = splitRef(r.PathValue("ref"))
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
	}
	return name, host, ok
}

// writeActingError renders the guard's refusals. Unauthenticated and
// unauthorized callers get the same status; the message is the only
// difference, and neither reveals whether the namespace exists. Returns
// false when err is not a guard refusal.
func writeActingError(w http.ResponseWriter, err error, name, host string) bool {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		writeError(w, http.StatusForbidden, "You must be logged in to perform this action")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden,
			fmt.Sprintf("You cannot act on behalf of %s@%s", name, host))
	default:
		return false
	}
	return true
}

func writeInternal(ctx context.Context, w http.ResponseWriter, err error) {
	slogx.FromContext(ctx).Error("request failed", slog.Any("error", err))
	writeError(w, http.StatusInternalServerError, "internal server error")
}
