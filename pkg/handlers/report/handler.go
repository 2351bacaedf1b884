package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/retail-tools/ledger-atlas/pkg/adapters"
	"github.com/retail-tools/ledger-atlas/pkg/export"
	"github.com/retail-tools/ledger-atlas/pkg/models/api"
	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
	"github.com/retail-tools/ledger-atlas/pkg/services/report"
)

type Handler struct {
	svc       report.Service
	formatter *export.Formatter
}

func NewHandler(svc report.Service, formatter *export.Formatter) *Handler {
	return &Handler{
		svc:       svc,
		formatter: formatter,
	}
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	response := adapters.MapTemplatesDomainToApi(h.svc.Templates(ctx))
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode templates")
	}
}

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	src := domain.Source(chi.URLParam(r, "source"))

	fields, err := h.svc.Catalog(ctx, src)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	if err := json.NewEncoder(w).Encode(fields); err != nil {
		logger.Error().Err(err).Str("source", string(src)).Msg("failed to encode catalog")
	}
}

func (h *Handler) RunReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	result, err := h.run(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Error().Err(err).Str("report", result.Config.ID).Msg("failed to encode result set")
	}
}

func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.run(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// Serialize to a buffer first so an export failure still yields a
	// clean error response instead of a truncated download.
	var buf bytes.Buffer
	if err := h.formatter.Write(&buf, format, result); err != nil {
		logger.Error().Err(err).Str("report", result.Config.ID).Msg("export failed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	filename := export.Filename(result.Config.Title, format, time.Now())
	switch format {
	case export.FormatCSV:
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	case export.FormatPDF:
		w.Header().Set("Content-Type", "application/pdf")
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().Err(err).Str("file", filename).Msg("failed to stream export")
	}
}

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	window := 0
	if q := r.URL.Query().Get("window"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid window %q", q))
			return
		}
		window = n
	}

	forecast, err := h.svc.Forecast(ctx, window)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := json.NewEncoder(w).Encode(forecast); err != nil {
		logger.Error().Err(err).Msg("failed to encode forecast")
	}
}

func (h *Handler) GetLifetimeValue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	clv, err := h.svc.LifetimeValue(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := json.NewEncoder(w).Encode(clv); err != nil {
		logger.Error().Err(err).Msg("failed to encode lifetime value")
	}
}

func (h *Handler) GetTurnover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	turnover, err := h.svc.Turnover(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := json.NewEncoder(w).Encode(turnover); err != nil {
		logger.Error().Err(err).Msg("failed to encode turnover")
	}
}

func (h *Handler) GetKPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	kpi, err := h.svc.KPI(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := json.NewEncoder(w).Encode(kpi); err != nil {
		logger.Error().Err(err).Msg("failed to encode kpi summary")
	}
}

// run decodes a RunRequest and executes it, resolving the template id
// when no inline config is supplied.
func (h *Handler) run(r *http.Request) (domain.ResultSet, error) {
	ctx := r.Context()

	var req api.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.ResultSet{}, fmt.Errorf("invalid request body: %w", err)
	}

	switch {
	case req.Config != nil:
		return h.svc.Run(ctx, *req.Config)
	case req.TemplateID != "":
		return h.svc.RunTemplate(ctx, req.TemplateID)
	default:
		return domain.ResultSet{}, fmt.Errorf("either templateId or config is required")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
}
