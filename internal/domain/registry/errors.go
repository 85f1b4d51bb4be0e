// Package registry reúne lo que comparten los cuatro módulos de cadastro
// (veterinarios, tutores, pets y consultas): taxonomía de errores, validación
// de inputs y helpers HTTP.
package registry

import (
	"errors"
	"fmt"
	"net/http"
)

// Tipos de error. Los servicios devuelven *Error con uno de estos como Kind;
// los adapters de storage pueden devolverlos envueltos con %w.
var (
	ErrValidation = errors.New("validation error")
	ErrReference  = errors.New("reference error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store error")
)

// Error lleva el tipo, el mensaje para el cliente y la causa (si la hay).
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) error { return &Error{Kind: ErrValidation, Msg: msg} }
func Reference(msg string) error  { return &Error{Kind: ErrReference, Msg: msg} }
func Conflict(msg string) error   { return &Error{Kind: ErrConflict, Msg: msg} }
func NotFound(msg string) error   { return &Error{Kind: ErrNotFound, Msg: msg} }

// Store envuelve un fallo del store indicando la operación.
// Si err ya es un *Error (p.ej. un chequeo dentro de la transacción) se devuelve tal cual.
// Las violaciones de constraint que el adapter marcó con ErrConflict/ErrReference
// conservan su tipo: el schema es la fuente de verdad cuando dos requests compiten.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return err
	}
	switch {
	case errors.Is(err, ErrConflict):
		return &Error{Kind: ErrConflict, Msg: "record already exists", Err: err}
	case errors.Is(err, ErrReference):
		return &Error{Kind: ErrReference, Msg: "referenced record does not exist", Err: err}
	case errors.Is(err, ErrNotFound):
		return &Error{Kind: ErrNotFound, Msg: "record not found", Err: err}
	}
	return &Error{Kind: ErrStore, Msg: op, Err: err}
}

// StatusCode mapea el tipo de error a HTTP.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrReference):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Message devuelve el texto seguro para el cliente. Los errores de store
// no exponen el mensaje del driver.
func Message(err error) string {
	var re *Error
	if errors.As(err, &re) && re.Kind != ErrStore {
		return re.Msg
	}
	return "internal error"
}
