package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/greenswap/greenbot/internal/classifications"
	"github.com/greenswap/greenbot/internal/conversations"
	"github.com/greenswap/greenbot/pkg/handlers"
	"github.com/greenswap/greenbot/pkg/routes"
)

// Overview combines per-domain activity aggregates for one user.
type Overview struct {
	Classifications *classifications.Stats `json:"classifications"`
	Conversations   *conversations.Stats   `json:"conversations"`
}

// StatsHandler serves the cross-domain activity overview.
type StatsHandler struct {
	domain *Domain
	logger *slog.Logger
}

func NewStatsHandler(domain *Domain, runtime *Runtime) *StatsHandler {
	return &StatsHandler{
		domain: domain,
		logger: runtime.Logger.With("handler", "stats"),
	}
}

// Routes declares the stats route group.
func (h *StatsHandler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/stats",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: h.Overview},
		},
	}
}

// Overview aggregates classification and conversation stats concurrently.
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(r.URL.Query().Get("owner_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var overview Overview
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		stats, err := h.domain.Classifications.Stats(ctx, ownerID)
		if err != nil {
			return err
		}
		overview.Classifications = stats
		return nil
	})
	g.Go(func() error {
		stats, err := h.domain.Conversations.Stats(ctx, ownerID)
		if err != nil {
			return err
		}
		overview.Conversations = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, overview)
}
