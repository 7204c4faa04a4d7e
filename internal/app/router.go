package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	contractshttp "github.com/apflow/apflow/internal/contracts/http"
	"github.com/apflow/apflow/internal/observability"
	"github.com/apflow/apflow/internal/platform/httpx"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	ContractsHandler *contractshttp.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with apflow defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondError(w, httpx.ErrNotFound)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if params.ContractsHandler != nil {
		params.ContractsHandler.MountRoutes(r)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
