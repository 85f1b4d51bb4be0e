package registry

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clinica-pet-feliz/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	DateLayout = "2006-01-02"
)

type errorResponse struct {
	Msg string `json:"msg"`
}

// WriteJSON antes estaba duplicado en cada módulo; con cuatro registros ya conviene el helper común.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMsg responde {"msg": ...}.
func WriteMsg(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorResponse{Msg: msg})
}

// WriteError mapea err a status + {"msg"} y lo loguea:
// 5xx como error (con la causa), 4xx como debug.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := StatusCode(err)
	fields := map[string]any{
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"request_id": chimw.GetReqID(r.Context()),
		"error":      err,
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields)
	} else {
		log.Debug("request rejected", fields)
	}
	WriteMsg(w, status, Message(err))
}

// DecodeJSON decodifica el body; cualquier fallo es ValidationError "invalid json".
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return Validation("invalid json")
	}
	return nil
}

// ParseID valida el {id} de la ruta.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, Validation("invalid id")
	}
	return id, nil
}

// ParseDate acepta YYYY-MM-DD; vacío => nil.
func ParseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, Validation(field + " must be YYYY-MM-DD")
	}
	return &t, nil
}

// ParseDateTime acepta RFC3339; vacío => nil.
func ParseDateTime(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, Validation(field + " must be RFC3339")
	}
	return &t, nil
}

func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
