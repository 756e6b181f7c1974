package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/helixml/xact"
	"github.com/helixml/xact/domain/lap"
	"github.com/helixml/xact/domain/repository"
	"github.com/helixml/xact/domain/timespan"
	"github.com/helixml/xact/infrastructure/api/jsonapi"
	"github.com/helixml/xact/infrastructure/api/middleware"
	"github.com/helixml/xact/infrastructure/api/v1/dto"
)

// maxImportBytes bounds the body accepted by the import endpoint.
const maxImportBytes = 8 << 20

var exportContentTypes = map[string]string{
	"json": "application/json",
	"yaml": "application/yaml",
	"toml": "application/toml",
	"cbor": "application/cbor",
}

// LapsRouter handles lap API endpoints.
type LapsRouter struct {
	client *xact.Client
	logger *slog.Logger
}

// NewLapsRouter creates a new LapsRouter.
func NewLapsRouter(client *xact.Client) *LapsRouter {
	return &LapsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for lap endpoints.
func (r *LapsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.Create)
	router.Get("/report", r.Report)
	router.Get("/export", r.Export)
	router.Post("/import", r.Import)
	router.Get("/{id}", r.Get)
	router.Delete("/{id}", r.Delete)

	return router
}

// List handles GET /api/v1/laps.
//
// Filters: label, label_like, min and max (timespan text), order
// (oldest or newest). Paginated with page and page_size.
func (r *LapsRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	filters, err := lapFilters(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	pagination := ParsePagination(req)

	total, err := r.client.Laps.Count(ctx, filters...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	options := append(filters, pagination.Options()...)
	if strings.EqualFold(req.URL.Query().Get("order"), "newest") {
		options = append(options, lap.WithNewestFirst(), repository.WithOrderDesc("id"))
	}

	laps, err := r.client.Laps.List(ctx, options...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	doc := jsonapi.NewListResponse(jsonapi.LapResources(laps, r.layout(req)))
	doc.Meta = PaginationMeta(pagination, total)
	doc.Links = PaginationLinks(req, pagination, total)
	middleware.WriteJSON(w, http.StatusOK, doc)
}

// Create handles POST /api/v1/laps.
func (r *LapsRouter) Create(w http.ResponseWriter, req *http.Request) {
	var body dto.LapCreateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "invalid request body", err), r.logger)
		return
	}

	attrs := body.Data.Attributes
	var (
		saved lap.Lap
		err   error
	)
	if attrs.Ticks != nil {
		saved, err = r.client.Laps.RecordSpan(req.Context(), attrs.Label, timespan.FromTicks(*attrs.Ticks))
	} else {
		saved, err = r.client.Laps.Record(req.Context(), attrs.Label, attrs.Span)
	}
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("%s/%d", strings.TrimSuffix(req.URL.Path, "/"), saved.ID()))
	middleware.WriteJSON(w, http.StatusCreated, jsonapi.NewSingleResponse(jsonapi.LapResource(saved, r.layout(req))))
}

// Get handles GET /api/v1/laps/{id}.
func (r *LapsRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := lapID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	l, err := r.client.Laps.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, jsonapi.NewSingleResponse(jsonapi.LapResource(l, r.layout(req))))
}

// Delete handles DELETE /api/v1/laps/{id}.
func (r *LapsRouter) Delete(w http.ResponseWriter, req *http.Request) {
	id, err := lapID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	if err := r.client.Laps.Delete(req.Context(), id); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Report handles GET /api/v1/laps/report.
func (r *LapsRouter) Report(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	filters, err := lapFilters(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	layout := r.layout(req)

	text, err := r.client.Laps.Report(ctx, layout, filters...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	total, err := r.client.Laps.Total(ctx, filters...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	count, err := r.client.Laps.Count(ctx, filters...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, jsonapi.NewSingleResponse(jsonapi.NewResource(jsonapi.TypeReport, "", jsonapi.ReportAttributes{
		Layout: layout,
		Count:  int(count),
		Total:  total.Format(layout),
		Text:   text,
	})))
}

// Export handles GET /api/v1/laps/export?format=json|yaml|toml|cbor.
func (r *LapsRouter) Export(w http.ResponseWriter, req *http.Request) {
	format := formatParam(req)

	filters, err := lapFilters(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data, err := r.client.Laps.Export(req.Context(), format, filters...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.Header().Set("Content-Type", exportContentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=laps.%s", format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Import handles POST /api/v1/laps/import?format=json|yaml|toml|cbor.
func (r *LapsRouter) Import(w http.ResponseWriter, req *http.Request) {
	data, err := io.ReadAll(io.LimitReader(req.Body, maxImportBytes))
	if err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "invalid request body", err), r.logger)
		return
	}

	laps, err := r.client.Laps.Import(req.Context(), formatParam(req), data)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, jsonapi.NewListResponse(jsonapi.LapResources(laps, r.layout(req))))
}

func (r *LapsRouter) layout(req *http.Request) string {
	if layout := req.URL.Query().Get("layout"); layout != "" {
		return layout
	}
	return r.client.Layout()
}

func formatParam(req *http.Request) string {
	format := strings.ToLower(req.URL.Query().Get("format"))
	if format == "" {
		return "json"
	}
	if format == "yml" {
		return "yaml"
	}
	return format
}

func lapID(req *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		return 0, middleware.NewAPIError(http.StatusBadRequest, "lap id must be an integer", err)
	}
	return id, nil
}

func lapFilters(req *http.Request) ([]repository.Option, error) {
	q := req.URL.Query()
	var options []repository.Option

	if label := q.Get("label"); label != "" {
		options = append(options, lap.WithLabel(label))
	}
	if pattern := q.Get("label_like"); pattern != "" {
		options = append(options, lap.WithLabelLike(pattern))
	}
	if text := q.Get("min"); text != "" {
		t, err := timespan.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("min: %w", err)
		}
		options = append(options, lap.WithMinSpan(t))
	}
	if text := q.Get("max"); text != "" {
		t, err := timespan.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		options = append(options, lap.WithMaxSpan(t))
	}
	return options, nil
}
