package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/hopeconnect/internal/common"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds request payloads.
const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("empty body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorBody(msg string) map[string]string   { return map[string]string{"error": msg} }
func msgBody(msg string) map[string]string     { return map[string]string{"msg": msg} }
func messageBody(msg string) map[string]string { return map[string]string{"message": msg} }

// decodeJSON reads a JSON object into dst. An absent body yields errEmptyBody.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	return err
}

// writeFailed answers a failed write. Rejected payloads and any storage
// failure are reported as 422 with the failure detail.
func (s *HTTPServer) writeFailed(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Warn(r.Context(), "write failed", "path", r.URL.Path, "error", err.Error())
	writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
}

// readFailed answers a failed read without exposing internal detail.
func (s *HTTPServer) readFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrorValidation) {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
		return
	}
	s.logger.Error(r.Context(), "read failed", "path", r.URL.Path, "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, errorBody(common.ErrorInternal.Error()))
}

// int64Param parses an integer path or query value.
func int64Param(v string) (int64, bool) {
	n, err := strconv.ParseInt(v, 10, 64)
	return n, err == nil
}

// textParam returns a decoded path parameter. chi matches against
// URL.RawPath when it is set, so the segment may still be escaped.
func textParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}
