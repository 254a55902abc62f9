package items

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/pkg/handlers"
	"github.com/greenswap/greenbot/pkg/pagination"
	"github.com/greenswap/greenbot/pkg/routes"
)

// Handler exposes item endpoints.
type Handler struct {
	system System
	logger *slog.Logger
	pages  *pagination.Config
}

func NewHandler(system System, logger *slog.Logger, pages *pagination.Config) *Handler {
	return &Handler{
		system: system,
		logger: logger.With("handler", "items"),
		pages:  pages,
	}
}

// Routes declares the item route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/items",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: h.List},
			{Method: http.MethodPost, Pattern: "", Handler: h.Create},
			{Method: http.MethodGet, Pattern: "/{id}", Handler: h.Find},
		},
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	item, err := h.system.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, item)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	item, err := h.system.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.FromQuery(r.URL.Query(), *h.pages)

	filters, err := filtersFromQuery(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.system.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func filtersFromQuery(r *http.Request) (Filters, error) {
	var filters Filters
	query := r.URL.Query()

	if raw := query.Get("owner_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, err
		}
		filters.OwnerID = &id
	}
	if raw := query.Get("category"); raw != "" {
		filters.Category = &raw
	}

	return filters, nil
}
