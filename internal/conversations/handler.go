package conversations

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/pkg/handlers"
	"github.com/greenswap/greenbot/pkg/pagination"
	"github.com/greenswap/greenbot/pkg/routes"
)

// Handler exposes conversation endpoints.
type Handler struct {
	system System
	logger *slog.Logger
	pages  *pagination.Config
}

func NewHandler(system System, logger *slog.Logger, pages *pagination.Config) *Handler {
	return &Handler{
		system: system,
		logger: logger.With("handler", "conversations"),
		pages:  pages,
	}
}

// Routes declares the conversation route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/conversations",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: h.List},
			{Method: http.MethodPost, Pattern: "", Handler: h.Create},
			{Method: http.MethodGet, Pattern: "/stats", Handler: h.Stats},
			{Method: http.MethodGet, Pattern: "/{id}", Handler: h.Find},
			{Method: http.MethodDelete, Pattern: "/{id}", Handler: h.Close},
			{Method: http.MethodPost, Pattern: "/{id}/messages", Handler: h.SendMessage},
			{Method: http.MethodGet, Pattern: "/{id}/messages", Handler: h.ContextWindow},
			{Method: http.MethodGet, Pattern: "/{id}/summary", Handler: h.Summarize},
			{Method: http.MethodPost, Pattern: "/messages/{id}/rating", Handler: h.Rate},
		},
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	session, err := h.system.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	session, err := h.system.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(r.URL.Query().Get("owner_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	page := pagination.FromQuery(r.URL.Query(), *h.pages)

	filters, err := filtersFromQuery(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.system.List(r.Context(), ownerID, page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	session, err := h.system.Close(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd SendCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	message, err := h.system.SendMessage(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, message)
}

func (h *Handler) ContextWindow(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	messages, err := h.system.ContextWindow(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, messages)
}

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	summary, err := h.system.Summarize(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd RateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	message, err := h.system.Rate(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, message)
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

	if raw := query.Get("type"); raw != "" {
		t := Type(raw)
		if !slices.Contains(types, t) {
			return filters, ErrInvalidType
		}
		filters.Type = &t
	}
	if raw := query.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, err
		}
		filters.Active = &active
	}

	return filters, nil
}
