package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// ErrorKind clasifica los errores de dominio para el mapeo en la frontera HTTP.
type ErrorKind string

const (
	KindDomain     ErrorKind = "domain"
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
)

// Error es el error clasificado que devuelven entidades y casos de uso.
// Details es opcional y solo sirve para diagnóstico.
type Error struct {
	Kind    ErrorKind
	Message string
	Details any
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Details != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is permite errors.Is(err, ErrNotFound) y errors.Is(err, ErrInvalidInput).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalidInput:
		return e.Kind == KindValidation
	}
	return false
}

// NewDomainError regla de negocio violada que no es validación ni ausencia.
func NewDomainError(msg string, details ...any) *Error {
	return newError(KindDomain, msg, details)
}

// NewValidationError entrada del llamador que no cumple una precondición.
func NewValidationError(msg string, details ...any) *Error {
	return newError(KindValidation, msg, details)
}

// NewNotFoundError la entidad referenciada no existe.
func NewNotFoundError(msg string, details ...any) *Error {
	return newError(KindNotFound, msg, details)
}

func newError(kind ErrorKind, msg string, details []any) *Error {
	e := &Error{Kind: kind, Message: msg}
	switch len(details) {
	case 0:
	case 1:
		e.Details = details[0]
	default:
		e.Details = details
	}
	return e
}

// AsError extrae el *Error clasificado de la cadena, si existe.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) && de != nil {
		return de, true
	}
	return nil, false
}

// IsKind indica si err (o alguno de sus envoltorios) es un *Error del tipo dado.
func IsKind(err error, kind ErrorKind) bool {
	de, ok := AsError(err)
	return ok && de.Kind == kind
}

// IsValidation atajo para KindValidation.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsNotFound atajo para KindNotFound.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsDomain es verdadero para cualquiera de los tres tipos (clase base).
func IsDomain(err error) bool {
	_, ok := AsError(err)
	return ok
}
