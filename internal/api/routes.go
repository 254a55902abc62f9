package api

import (
	"net/http"

	"github.com/greenswap/greenbot/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Items.Handler().Routes(),
		domain.Classifications.Handler().Routes(),
		domain.Conversations.Handler().Routes(),
		NewStatsHandler(domain, runtime).Routes(),
	)
}
