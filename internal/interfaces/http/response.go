package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/customers-api/internal/application/dto"
	"github.com/jhoicas/customers-api/internal/domain"
)

// Request descripción de una petición entrante, independiente del transporte
// (Fiber, API Gateway, tests).
type Request struct {
	Method string
	Path   string
	Query  map[string]string
	Body   string
}

// Response descripción de la respuesta saliente.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// Códigos de error del cuerpo dto.ErrorResponse.
const (
	CodeValidation    = "VALIDATION"
	CodeNotFound      = "NOT_FOUND"
	CodeDomain        = "DOMAIN"
	CodeConflict      = "CONFLICT"
	CodeRouteNotFound = "ROUTE_NOT_FOUND"
	CodeInternal      = "INTERNAL"
)

const (
	headerContentType = "Content-Type"
	headerAllowOrigin = "Access-Control-Allow-Origin"
	mimeJSON          = "application/json"
)

func jsonResponse(status int, body any) Response {
	b, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		b = []byte(`{"code":"INTERNAL","message":"Internal Server Error"}`)
	}
	return Response{
		StatusCode: status,
		Headers: map[string]string{
			headerContentType: mimeJSON,
			headerAllowOrigin: "*",
		},
		Body: string(b),
	}
}

func noContent() Response {
	return Response{
		StatusCode: http.StatusNoContent,
		Headers:    map[string]string{headerAllowOrigin: "*"},
	}
}

func errorBody(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Code: code, Message: msg}
}

// statusFromError traduce la taxonomía de errores a código HTTP y código de cuerpo.
// El orden importa: validación y no-encontrado antes que el genérico de dominio.
func statusFromError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, ""
	case domain.IsValidation(err):
		return http.StatusBadRequest, CodeValidation
	case domain.IsNotFound(err):
		return http.StatusNotFound, CodeNotFound
	case domain.IsDomain(err):
		return http.StatusUnprocessableEntity, CodeDomain
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, CodeConflict
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// decodeJSON interpreta el cuerpo; vacío equivale a "{}". Cualquier fallo se devuelve
// como ValidationError para que nunca llegue al caso de uso.
func decodeJSON(body string, v any) error {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	err := json.Unmarshal([]byte(body), v)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return domain.NewValidationError("Request body must be a JSON object")
		}
		return domain.NewValidationError(fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
	}
	return domain.NewValidationError("Request body must be valid JSON", err.Error())
}

// truthy interpreta flags de query laxos: "true", "1", "yes".
func truthy(v string) bool {
	switch v {
	case "true", "1", "yes":
		return true
	}
	return false
}
