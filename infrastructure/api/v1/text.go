package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helixml/xact"
	"github.com/helixml/xact/domain/textbuilder"
	"github.com/helixml/xact/infrastructure/api/jsonapi"
	"github.com/helixml/xact/infrastructure/api/middleware"
	"github.com/helixml/xact/infrastructure/api/v1/dto"
)

// TextRouter renders text from fragments.
type TextRouter struct {
	logger *slog.Logger
}

// NewTextRouter creates a new TextRouter.
func NewTextRouter(client *xact.Client) *TextRouter {
	return &TextRouter{logger: client.Logger()}
}

// Routes returns the chi router for text endpoints.
func (r *TextRouter) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/render", r.Render)
	return router
}

// Render handles POST /api/v1/text/render.
func (r *TextRouter) Render(w http.ResponseWriter, req *http.Request) {
	var body dto.RenderRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, "invalid request body", err), r.logger)
		return
	}

	b := textbuilder.New()
	for _, f := range body.Fragments {
		if f.Line {
			b.AppendLine(f.Text)
			continue
		}
		b.Append(f.Text)
	}

	middleware.WriteJSON(w, http.StatusOK, jsonapi.NewSingleResponse(jsonapi.TextResource(b)))
}
