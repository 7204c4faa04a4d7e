package contractshttp

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/apflow/apflow/internal/contracts"
	"github.com/apflow/apflow/internal/observability"
	"github.com/apflow/apflow/internal/platform/httpx"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// Catalog is the validation surface the handlers dispatch to.
type Catalog interface {
	ValidateCreate(entity string, data []byte) (any, error)
	ValidateUpdate(entity string, data []byte) (any, error)
	ValidateQuery(entity string, values url.Values) (any, error)
	Descriptors() []contracts.Descriptor
}

// Recorder counts validation outcomes.
type Recorder interface {
	ObserveValidation(entity, operation, outcome string, violations int)
}

// Handler validates contract payloads over HTTP.
type Handler struct {
	logger  *slog.Logger
	catalog Catalog
	metrics Recorder
	maxBody int64
}

// NewHandler builds the contract handler. A nil catalog falls back to contracts.Default.
func NewHandler(logger *slog.Logger, catalog Catalog, metrics Recorder, maxBody int64) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if catalog == nil {
		catalog = contracts.Default
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &Handler{
		logger:  logger,
		catalog: catalog,
		metrics: metrics,
		maxBody: maxBody,
	}
}

type dataEnvelope struct {
	Data any `json:"data"`
}

type entitiesEnvelope struct {
	Entities []contracts.Descriptor `json:"entities"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, entitiesEnvelope{Entities: h.catalog.Descriptors()})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.handleBody(w, r, contracts.OpCreate, h.catalog.ValidateCreate)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	h.handleBody(w, r, contracts.OpUpdate, h.catalog.ValidateUpdate)
}

func (h *Handler) handleBody(w http.ResponseWriter, r *http.Request, op contracts.Operation, validate func(string, []byte) (any, error)) {
	entity := chi.URLParam(r, "entity")
	data, err := httpx.ReadBody(w, r, h.maxBody)
	if err != nil {
		h.logger.Warn("read contract payload", slog.String("entity", entity), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out, err := validate(entity, data)
	h.respond(w, entity, op, out, err)
}

func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	out, err := h.catalog.ValidateQuery(entity, r.URL.Query())
	h.respond(w, entity, contracts.OpQuery, out, err)
}

func (h *Handler) respond(w http.ResponseWriter, entity string, op contracts.Operation, out any, err error) {
	if err == nil {
		h.observe(entity, op, observability.OutcomeValid, 0)
		httpx.JSON(w, http.StatusOK, dataEnvelope{Data: out})
		return
	}
	if fe, ok := contracts.AsFieldErrors(err); ok {
		h.observe(entity, op, observability.OutcomeInvalid, len(fe))
		h.logger.Debug("contract rejected",
			slog.String("entity", entity),
			slog.String("operation", string(op)),
			slog.Int("violations", len(fe)))
		httpx.ValidationProblem(w, fe)
		return
	}
	// Lookup failures are not counted so arbitrary path segments never become label values.
	switch {
	case errors.Is(err, contracts.ErrUnknownEntity):
		httpx.RespondError(w, fmt.Errorf("%w: %w", httpx.ErrNotFound, err))
	case errors.Is(err, contracts.ErrUnsupportedOperation):
		httpx.RespondError(w, fmt.Errorf("%w: %w", httpx.ErrMethodNotAllowed, err))
	default:
		h.observe(entity, op, observability.OutcomeError, 0)
		h.logger.Error("validate contract",
			slog.String("entity", entity),
			slog.String("operation", string(op)),
			slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

func (h *Handler) observe(entity string, op contracts.Operation, outcome string, violations int) {
	if h.metrics == nil {
		return
	}
	h.metrics.ObserveValidation(entity, string(op), outcome, violations)
}
