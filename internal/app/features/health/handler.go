package health

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Backend string
	Client  *mongo.Client // nil on the memory backend
	Log     *zap.Logger
}

// NewHandler constructs a health Handler for the configured backend.
func NewHandler(backend string, client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Backend: backend,
		Client:  client,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Backend  string `json:"backend"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "backend":"mongo", "database":"connected" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "backend":"mongo", "database":"disconnected", "message":"Database unavailable", "error":"…"}
//
// The memory backend always reports "in-memory".
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:   "ok",
		Backend:  h.Backend,
		Database: "in-memory",
	}
	if h.Client == nil {
		render.JSON(w, r, resp)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, resp)
		return
	}

	resp.Database = "connected"
	render.JSON(w, r, resp)
}
