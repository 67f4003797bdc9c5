package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"finsage/repository"
	"finsage/service"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched
// when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return errUnsupportedMediaType
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: empty body", errBadBody)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	return nil
}

var (
	errBadBody              = errors.New("invalid request body")
	errUnsupportedMediaType = errors.New("Content-Type must be application/json")
)

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200.
func writeJSON(w http.ResponseWriter, logger *logrus.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.WithError(err).Error("failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.WithError(err).Warn("failed to write response")
	}
}

// writeError maps service and repository errors onto status codes.
func writeError(w http.ResponseWriter, logger *logrus.Logger, err error) {
	var vErr *service.ValidationError

	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, errUnsupportedMediaType):
		http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
	case errors.Is(err, errBadBody):
		http.Error(w, "invalid request body", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidToken):
		http.Error(w, "invalid token", http.StatusUnauthorized)
	default:
		logger.WithError(err).Error("request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
