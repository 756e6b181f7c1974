// Package v1 provides the v1 API routes.
package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/helixml/xact"
	"github.com/helixml/xact/domain/timespan"
	"github.com/helixml/xact/infrastructure/api/jsonapi"
	"github.com/helixml/xact/infrastructure/api/middleware"
	"github.com/helixml/xact/infrastructure/api/v1/dto"
)

// TimespansRouter handles timespan parsing, formatting and arithmetic.
type TimespansRouter struct {
	layout string
	logger *slog.Logger
}

// NewTimespansRouter creates a new TimespansRouter.
func NewTimespansRouter(client *xact.Client) *TimespansRouter {
	return &TimespansRouter{
		layout: client.Layout(),
		logger: client.Logger(),
	}
}

// Routes returns the chi router for timespan endpoints.
func (r *TimespansRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/parse", r.Parse)
	router.Get("/format", r.Format)
	router.Post("/arithmetic", r.Arithmetic)

	return router
}

// Parse handles GET /api/v1/timespans/parse?text=...&layout=...
func (r *TimespansRouter) Parse(w http.ResponseWriter, req *http.Request) {
	text := req.URL.Query().Get("text")
	if strings.TrimSpace(text) == "" {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "text is required", nil), r.logger)
		return
	}

	t, err := timespan.Parse(text)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, jsonapi.NewSingleResponse(jsonapi.TimespanResource(t, r.layoutParam(req))))
}

// Format handles GET /api/v1/timespans/format?ticks=...&layout=...
func (r *TimespansRouter) Format(w http.ResponseWriter, req *http.Request) {
	ticks, err := strconv.ParseInt(req.URL.Query().Get("ticks"), 10, 64)
	if err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "ticks must be an integer", err), r.logger)
		return
	}

	t := timespan.FromTicks(ticks)
	middleware.WriteJSON(w, http.StatusOK, jsonapi.NewSingleResponse(jsonapi.TimespanResource(t, r.layoutParam(req))))
}

// Arithmetic handles POST /api/v1/timespans/arithmetic.
func (r *TimespansRouter) Arithmetic(w http.ResponseWriter, req *http.Request) {
	var body dto.ArithmeticRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "invalid request body", err), r.logger)
		return
	}

	result, err := evaluate(body)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	layout := body.Layout
	if layout == "" {
		layout = r.layout
	}
	middleware.WriteJSON(w, http.StatusOK, jsonapi.NewSingleResponse(jsonapi.TimespanResource(result, layout)))
}

func (r *TimespansRouter) layoutParam(req *http.Request) string {
	if layout := req.URL.Query().Get("layout"); layout != "" {
		return layout
	}
	return r.layout
}

func evaluate(body dto.ArithmeticRequest) (timespan.Timespan, error) {
	left, err := operand("left", body.Left, body.LeftTicks)
	if err != nil {
		return timespan.Zero, err
	}

	switch strings.ToLower(body.Op) {
	case dto.OpAdd, dto.OpSub:
		right, err := operand("right", body.Right, body.RightTicks)
		if err != nil {
			return timespan.Zero, err
		}
		if strings.EqualFold(body.Op, dto.OpAdd) {
			return left.Add(right)
		}
		return left.Sub(right)
	case dto.OpMul, dto.OpDiv:
		if body.Scalar == nil {
			return timespan.Zero, middleware.NewAPIError(http.StatusBadRequest, "scalar is required for "+body.Op, nil)
		}
		if strings.EqualFold(body.Op, dto.OpMul) {
			return left.Mul(*body.Scalar)
		}
		return left.Div(*body.Scalar)
	case dto.OpNegate:
		return left.Negate()
	case dto.OpAbs:
		return left.Abs()
	default:
		return timespan.Zero, middleware.NewAPIError(http.StatusBadRequest, fmt.Sprintf("unknown op %q", body.Op), nil)
	}
}

func operand(name, text string, ticks *int64) (timespan.Timespan, error) {
	if ticks != nil {
		return timespan.FromTicks(*ticks), nil
	}
	if strings.TrimSpace(text) == "" {
		return timespan.Zero, middleware.NewAPIError(http.StatusBadRequest, name+" is required", nil)
	}
	t, err := timespan.Parse(text)
	if err != nil {
		return timespan.Zero, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
