package classifications

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/pkg/handlers"
	"github.com/greenswap/greenbot/pkg/pagination"
	"github.com/greenswap/greenbot/pkg/routes"
)

// Handler exposes classification endpoints.
type Handler struct {
	system System
	logger *slog.Logger
	pages  *pagination.Config
}

func NewHandler(system System, logger *slog.Logger, pages *pagination.Config) *Handler {
	return &Handler{
		system: system,
		logger: logger.With("handler", "classifications"),
		pages:  pages,
	}
}

// Routes declares the classification route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/classifications",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: h.List},
			{Method: http.MethodPost, Pattern: "", Handler: h.Classify},
			{Method: http.MethodGet, Pattern: "/stats", Handler: h.Stats},
			{Method: http.MethodGet, Pattern: "/{id}", Handler: h.Find},
			{Method: http.MethodPost, Pattern: "/{id}/feedback", Handler: h.Feedback},
			{Method: http.MethodGet, Pattern: "/items/{id}", Handler: h.FindByItem},
			{Method: http.MethodPost, Pattern: "/items/{id}", Handler: h.ClassifyItem},
		},
	}
}

// Classify runs an ad-hoc classification without persisting. The outcome
// is returned as data; a model failure is a 200 with the failure tagged.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var cmd ClassifyCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	outcome := h.system.Classify(r.Context(), cmd)
	handlers.RespondJSON(w, http.StatusOK, outcome)
}

// ClassifyItem classifies an item's image and stores the outcome.
func (h *Handler) ClassifyItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	record, err := h.system.ClassifyItem(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, mapItemError(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, record)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	record, err := h.system.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, record)
}

func (h *Handler) FindByItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	record, err := h.system.FindByItem(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, record)
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

func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd FeedbackCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	record, err := h.system.Feedback(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, record)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(r.URL.Query().Get("owner_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	stats, err := h.system.Stats(r.Context(), ownerID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}

func filtersFromQuery(r *http.Request) (Filters, error) {
	var filters Filters
	query := r.URL.Query()

	if raw := query.Get("item_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, err
		}
		filters.ItemID = &id
	}
	if raw := query.Get("status"); raw != "" {
		status := Status(raw)
		filters.Status = &status
	}
	if raw := query.Get("level"); raw != "" {
		level := Confidence(raw)
		filters.Level = &level
	}

	return filters, nil
}
