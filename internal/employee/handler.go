package employee

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/org-directory/internal/transport"
	"github.com/frahmantamala/org-directory/pkg/logger"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateEmployeeDTO) (*PublicView, error)
	GetByID(ctx context.Context, id int64) (*PublicView, error)
	Update(ctx context.Context, id int64, dto UpdateEmployeeDTO) (*PublicView, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Summary, error)
	ManagersOfDepartment(ctx context.Context, departmentID int64) ([]PublicView, error)
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Create: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.Logger.Error("Create: service error", "error", err, "email", dto.OfficialEmail)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteResponse(w, http.StatusCreated, view)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	view, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.Logger.Error("GetByID: service error", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteResponse(w, http.StatusOK, view)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var dto UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Update: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.Logger.Error("Update: service error", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteResponse(w, http.StatusAccepted, view)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.Logger.Error("Delete: service error", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteResponse(w, http.StatusNoContent, nil)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.ListAll(r.Context())
	if err != nil {
		h.Logger.Error("ListAll: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteResponse(w, http.StatusOK, summaries)
}

func (h *Handler) ManagersOfDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	views, err := h.Service.ManagersOfDepartment(r.Context(), id)
	if err != nil {
		h.Logger.Error("ManagersOfDepartment: service error", "error", err, "department_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteResponse(w, http.StatusOK, views)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.Logger.Error("invalid id parameter", "param", param, "value", raw)
		h.WriteError(w, http.StatusBadRequest, "invalid id parameter")
		return 0, false
	}
	return id, true
}
