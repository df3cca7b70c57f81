package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/replset-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replset-api/internal/domain"
)

// maxRequestBody caps JSON request bodies at 1 MiB.
const maxRequestBody = 1 << 20

// pathID returns the trimmed {name} route parameter. ObjectID syntax is
// checked by the store.
func pathID(r *http.Request, name string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, name))
	if id == "" {
		return "", domain.NewFieldError(name, domain.MsgRequired)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response", slog.Any("error", err))
	}
}

// readRequest decodes the JSON body into req and validates it. On failure it
// has already written a 400 and returns false.
func readRequest[T interface{ Validate() error }](w http.ResponseWriter, r *http.Request, req T) bool {
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewFieldError("body", "invalid JSON"))
		return false
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
