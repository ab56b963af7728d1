// Package httpapi exposes the daemon's HTTP and WebSocket surface.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cubeworks/mc-manager/internal/api"
	"github.com/cubeworks/mc-manager/internal/events"
	"github.com/cubeworks/mc-manager/internal/instance"
	"github.com/cubeworks/mc-manager/internal/save"
	"github.com/cubeworks/mc-manager/internal/version"
)

// maxBodySize caps JSON request bodies.
const maxBodySize = 16 * 1024

// Server wires the HTTP surface to the supervisor and stores.
type Server struct {
	Saves    *save.Store
	Sup      *instance.Supervisor
	Versions *version.Catalog
	Events   *events.Store // may be nil when the event store failed to open
}

// Routes builds the request multiplexer.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/saves", s.handleSaves)
	mux.HandleFunc("GET /api/schema", s.handleSchema)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/versions", s.handleVersions)
	mux.HandleFunc("GET /api/events", s.handleEvents)
	mux.HandleFunc("GET /api/icons/{name}", s.handleIcon)
	mux.HandleFunc("POST /api/create_save", s.handleCreateSave)
	mux.HandleFunc("POST /api/modify_save", s.handleModifySave)
	mux.HandleFunc("POST /api/delete_save", s.handleDeleteSave)
	mux.HandleFunc("POST /api/start_save", s.handleStartSave)
	mux.HandleFunc("POST /api/stop_save", s.handleStopSave)
	mux.HandleFunc("POST /api/command", s.handleCommand)
	mux.HandleFunc("GET /api/console/{offset}/{name}", s.handleConsole)
	return mux
}

// decodeBody parses a JSON request body into v, enforcing the size cap.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return api.BadRequest()
	}
	return nil
}

// record logs a lifecycle event; the audit trail is best-effort.
func (s *Server) record(kind, name string) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Record(kind, name); err != nil {
		slog.Warn("could not record event", "kind", kind, "save", name, "error", err)
	}
}
