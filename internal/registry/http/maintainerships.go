package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/broadvale/registry/internal/registry/domain"
	"github.com/broadvale/registry/internal/registry/service"
)

// MaintainershipsHandler serves the namespace's view of package maintainer
// grants.
type MaintainershipsHandler struct {
	Maintainer *service.MaintainershipService
}

type packageView struct {
	Name string `json:"name"`
}

func packageViews(pkgs []domain.Package) []packageView {
	views := make([]packageView, 0, len(pkgs))
	for _, p := range pkgs {
		views = append(views, packageView{Name: p.Name})
	}
	return views
}

// HandlePending lists packages with an unconfirmed maintainer grant for the
// namespace. Members only.
func (h *MaintainershipsHandler) HandlePending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, host, ok := refParts(w, r)
	if !ok {
		return
	}

	pkgs, err := h.Maintainer.Pending(ctx, userFrom(ctx), name, host)
	if err != nil {
		if writeActingError(w, err, name, host) {
			return
		}
		writeInternal(ctx, w, err)
		return
	}
	writeObjects(w, packageViews(pkgs))
}

// HandleConfirmed lists packages the namespace actively co-maintains.
func (h *MaintainershipsHandler) HandleConfirmed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, host, ok := refParts(w, r)
	if !ok {
		return
	}

	pkgs, err := h.Maintainer.Confirmed(ctx, name, host)
	if err != nil {
		if errors.Is(err, service.ErrNamespaceNotFound) {
			writeError(w, http.StatusNotFound,
				fmt.Sprintf("%s@%s does not exist.", name, host))
			return
		}
		writeInternal(ctx, w, err)
		return
	}
	writeObjects(w, packageViews(pkgs))
}
