package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/cubeworks/mc-manager/internal/api"
	"github.com/cubeworks/mc-manager/internal/naming"
)

// handleConsole upgrades to a WebSocket and streams the instance's output
// as binary frames, starting at the requested byte offset. The stream ends
// when the buffer is complete and fully delivered, when the client goes
// away, or when the daemon begins shutting down.
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	offset, err := strconv.Atoi(r.PathValue("offset"))
	if err != nil || offset < 0 {
		writeError(w, api.BadRequest())
		return
	}
	name, err := naming.ParseName(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	buf, err := s.Sup.Read(name)
	if err != nil {
		writeError(w, err)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Debug("websocket accept failed", "save", name, "error", err)
		return
	}
	defer conn.CloseNow()

	id := uuid.NewString()
	slog.Debug("console subscriber attached", "save", name, "conn", id, "offset", offset)

	ctx := r.Context()
	for !s.Sup.IsShutdown() {
		delta, end, alive, wait := buf.SnapshotFrom(offset)
		if len(delta) > 0 {
			if err := conn.Write(ctx, websocket.MessageBinary, delta); err != nil {
				slog.Debug("console subscriber dropped", "save", name, "conn", id, "error", err)
				return
			}
			offset = end
			continue
		}
		if !alive {
			break
		}
		select {
		case <-wait:
		case <-ctx.Done():
			slog.Debug("console subscriber disconnected", "save", name, "conn", id)
			return
		}
	}

	conn.Close(websocket.StatusNormalClosure, "")
	slog.Debug("console subscriber finished", "save", name, "conn", id, "offset", offset)
}
