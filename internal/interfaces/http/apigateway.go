package http

import (
	"context"
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// APIGatewayHandler adapta CustomerHandler a eventos de API Gateway (proxy REST).
type APIGatewayHandler struct {
	h *CustomerHandler
}

// NewAPIGatewayHandler construye el adaptador.
func NewAPIGatewayHandler(h *CustomerHandler) *APIGatewayHandler {
	return &APIGatewayHandler{h: h}
}

// Handle firma compatible con lambda.Start. El error siempre es nil: los fallos
// viajan como respuestas mapeadas.
func (a *APIGatewayHandler) Handle(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp := a.h.Handle(ctx, RequestFromAPIGateway(ev))
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}

// RequestFromAPIGateway convierte el evento a Request. Sin Path (invocación de prueba
// desde consola) la ruta se reconstruye desde Resource y pathParameters.
func RequestFromAPIGateway(ev events.APIGatewayProxyRequest) Request {
	query := make(map[string]string, len(ev.QueryStringParameters))
	for k, vs := range ev.MultiValueQueryStringParameters {
		if len(vs) > 0 {
			query[k] = vs[0]
		}
	}
	for k, v := range ev.QueryStringParameters {
		query[k] = v
	}

	body := ev.Body
	if ev.IsBase64Encoded && body != "" {
		if raw, err := base64.StdEncoding.DecodeString(body); err == nil {
			body = string(raw)
		}
	}

	path := ev.Path
	if path == "" {
		path = expandResource(ev.Resource, ev.PathParameters)
	}

	return Request{
		Method: ev.HTTPMethod,
		Path:   path,
		Query:  query,
		Body:   body,
	}
}

// expandResource sustituye {param} y {param+} en la plantilla de recurso de API Gateway.
// El parámetro greedy conserva sus "/" y se escapa por segmento.
func expandResource(resource string, params map[string]string) string {
	out := resource
	for k, v := range params {
		out = strings.ReplaceAll(out, "{"+k+"+}", escapeSegments(v))
		out = strings.ReplaceAll(out, "{"+k+"}", url.PathEscape(v))
	}
	return out
}

func escapeSegments(v string) string {
	parts := strings.Split(v, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
