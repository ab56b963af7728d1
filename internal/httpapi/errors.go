package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cubeworks/mc-manager/internal/api"
)

type errorBody struct {
	Err    string `json:"err"`
	Desc   string `json:"desc"`
	Prop   string `json:"prop,omitempty"`
	Status string `json:"status,omitempty"`
}

// writeError renders any error as the structured JSON error body. Errors
// that are not *api.Error are treated as internal I/O failures.
func writeError(w http.ResponseWriter, err error) {
	var ae *api.Error
	if !errors.As(err, &ae) {
		ae = api.IO(err)
	}
	if ae.Kind == api.KindIOError || ae.Kind == api.KindJavaError {
		slog.Error("request failed", "kind", ae.Kind, "detail", ae.Detail)
	}
	body := errorBody{
		Err:    string(ae.Kind),
		Desc:   ae.Desc(),
		Prop:   ae.Prop,
		Status: ae.Status,
	}
	writeJSONStatus(w, ae.HTTPStatus(), body)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "encoding failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// writeRawJSON sends a body that is already JSON text.
func writeRawJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}
