// Package render writes and reads the JSON bodies of the intake HTTP API.
package render

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/you-humble/consultancy-desk/intake/internal/transport/http/dto"
)

const maxBodyBytes = 64 << 10

var ErrBadJSON = errors.New("invalid JSON")

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, kind, msg string) {
	JSON(w, status, dto.Error{Code: status, Kind: kind, Message: msg})
}

// Decode reads exactly one JSON value into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ErrBadJSON
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrBadJSON
	}
	return nil
}
