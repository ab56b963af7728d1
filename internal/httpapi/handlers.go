package httpapi

import (
	"net/http"
	"os"
	"strings"

	"github.com/cubeworks/mc-manager/internal/api"
	"github.com/cubeworks/mc-manager/internal/events"
	"github.com/cubeworks/mc-manager/internal/instance"
	"github.com/cubeworks/mc-manager/internal/naming"
	"github.com/cubeworks/mc-manager/internal/schema"
)

func (s *Server) handleSaves(w http.ResponseWriter, r *http.Request) {
	names, err := s.Saves.Iter()
	if err != nil {
		writeError(w, err)
		return
	}
	var body strings.Builder
	body.Grow(16 * 1024)
	body.WriteString(`{"saves":[`)
	first := true
	for _, name := range names {
		status, err := s.Sup.Query(name)
		if err != nil {
			writeError(w, err)
			return
		}
		savejson, err := s.Saves.Load(name, status.String())
		if err != nil {
			writeError(w, err)
			return
		}
		if !first {
			body.WriteString(",")
		}
		first = false
		body.WriteString(savejson)
	}
	body.WriteString("]}")
	writeRawJSON(w, body.String())
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	body, err := s.Saves.SchemaJSON()
	if err != nil {
		writeError(w, err)
		return
	}
	writeRawJSON(w, body)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSONStatus(w, http.StatusOK, s.Sup.StatusSummary())
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := s.Versions.List()
	if err != nil {
		writeError(w, api.IO(err))
		return
	}
	writeJSONStatus(w, http.StatusOK, versions)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if s.Events == nil {
		writeJSONStatus(w, http.StatusOK, []events.Event{})
		return
	}
	recent, err := s.Events.Recent(100)
	if err != nil {
		writeError(w, api.IO(err))
		return
	}
	writeJSONStatus(w, http.StatusOK, recent)
}

func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	name, err := naming.ParseName(r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := os.ReadFile(s.Saves.IconPath(name))
	if err != nil {
		data = unknownPNG
	}
	w.Header().Set("Content-Type", "image/x-png")
	w.Write(data)
}

func (s *Server) handleCreateSave(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string                  `json:"name"`
		Version string                  `json:"version"`
		Values  map[string]schema.Value `json:"values"`
	}
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, err)
		return
	}
	if !naming.IsSafe(body.Name) {
		writeError(w, api.BadName())
		return
	}
	savejson, err := s.Saves.Create(body.Name, body.Version, body.Values)
	if err != nil {
		writeError(w, err)
		return
	}
	s.record(events.KindSaveCreated, body.Name)
	writeRawJSON(w, savejson)
}

// gateIdle reports an error unless the instance is Cold or Offline; save
// files may only change while no child owns them.
func (s *Server) gateIdle(name string) error {
	status, err := s.Sup.Query(name)
	if err != nil {
		return err
	}
	switch status {
	case instance.Cold, instance.Offline:
		return nil
	default:
		return api.BadInstanceStatus(status.String())
	}
}

func (s *Server) handleModifySave(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name   string                  `json:"name"`
		Values map[string]schema.Value `json:"values"`
	}
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, err)
		return
	}
	if !naming.IsSafe(body.Name) {
		writeError(w, api.BadName())
		return
	}
	if err := s.gateIdle(body.Name); err != nil {
		writeError(w, err)
		return
	}
	if err := s.Saves.Modify(body.Name, body.Values); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDeleteSave(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, err)
		return
	}
	if !naming.IsSafe(body.Name) {
		writeError(w, api.BadName())
		return
	}
	if err := s.gateIdle(body.Name); err != nil {
		writeError(w, err)
		return
	}
	if err := s.Saves.Delete(body.Name); err != nil {
		writeError(w, err)
		return
	}
	s.record(events.KindSaveDeleted, body.Name)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleStartSave(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, err)
		return
	}
	if !naming.IsSafe(body.Name) {
		writeError(w, api.BadName())
		return
	}
	if err := s.Sup.Start(body.Name); err != nil {
		writeError(w, err)
		return
	}
	s.record(events.KindInstanceStarted, body.Name)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleStopSave(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, err)
		return
	}
	if !naming.IsSafe(body.Name) {
		writeError(w, api.BadName())
		return
	}
	if err := s.Sup.Stop(body.Name); err != nil {
		writeError(w, err)
		return
	}
	s.record(events.KindInstanceStopped, body.Name)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Command string `json:"command"`
	}
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, err)
		return
	}
	if !naming.IsSafe(body.Name) {
		writeError(w, api.BadName())
		return
	}
	if err := s.Sup.Write(body.Name, body.Command); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
