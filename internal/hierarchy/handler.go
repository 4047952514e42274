package hierarchy

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/org-directory/internal/transport"
	"github.com/frahmantamala/org-directory/pkg/logger"
)

type ServiceAPI interface {
	ReportsOrSelf(ctx context.Context, targetID int64) (*ReportsOrSelfResult, error)
	OrgSummary(ctx context.Context) (*OrgSummaryResult, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     service,
	}
}

// Reports handles GET /employees/{id}/reports. The caller's role decides the
// shape of the answer; it is read from the request context placed there by
// the auth middleware.
func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.Logger.Error("Reports: invalid id parameter", "value", raw)
		h.WriteError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	result, err := h.Service.ReportsOrSelf(r.Context(), id)
	if err != nil {
		h.Logger.Error("Reports: service error", "error", err, "target_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteResponse(w, http.StatusOK, result)
}

// OrgSummaryHandler handles GET /organisation.
func (h *Handler) OrgSummaryHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.OrgSummary(r.Context())
	if err != nil {
		h.Logger.Error("OrgSummary: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteResponse(w, http.StatusOK, result)
}
