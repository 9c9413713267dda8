package graphql

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// maxRequestBodySize caps the request body at 1MB.
const maxRequestBodySize = 1 << 20

// Handler serves GraphQL-over-HTTP POST requests.
type Handler struct {
	exec *Executor
	log  *slog.Logger
}

// NewHandler creates a Handler around the executor.
func NewHandler(log *slog.Logger, exec *Executor) *Handler {
	return &Handler{
		exec: exec,
		log:  log.With("component", "graphql"),
	}
}

// ServeHTTP decodes the request body, executes it, and writes {data, errors}.
// Execution errors still return 200; only transport failures change the
// HTTP status.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req Request
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := h.exec.Execute(r.Context(), &req)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, &Response{Errors: []Error{{Message: message}}})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}
