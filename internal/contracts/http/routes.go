package contractshttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apflow/apflow/internal/platform/httpx"
)

// MountRoutes registers the contract validation endpoints under /v1/contracts.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	r.Route("/v1/contracts", func(cr chi.Router) {
		cr.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			httpx.RespondError(w, httpx.ErrMethodNotAllowed)
		})
		cr.Get("/", h.handleList)
		cr.Post("/{entity}", h.handleCreate)
		cr.Patch("/{entity}", h.handleUpdate)
		cr.Get("/{entity}/query", h.handleQuery)
	})
}
