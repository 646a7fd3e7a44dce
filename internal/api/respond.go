package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/litcanvas/litcanvas/internal/storage"
)

// errorResponse is the JSON shape for all error replies.
type errorResponse struct {
	Error string `json:"error"`
}

// idResponse is the JSON shape for creation replies.
type idResponse struct {
	ID int64 `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeStoreError maps storage errors onto status codes. Foreign key
// violations surface as 400s; everything else is a 500 fatal to the
// current request only.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrForeignKey) {
		writeError(w, http.StatusBadRequest, "referenced row does not exist")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// decodeBody decodes a JSON request body, replying 400 on malformed input.
// Returns false when the request has already been answered.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses a numeric URL parameter, replying 400 on garbage.
// Returns 0, false when the request has already been answered.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// requestLogger logs one line per request.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}
