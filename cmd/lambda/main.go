package main

import (
	"context"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jhoicas/customers-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/customers-api/internal/interfaces/http"
	"github.com/jhoicas/customers-api/pkg/config"
	"github.com/jhoicas/customers-api/pkg/logger"
)

// lazyHandler construye el adaptador en la primera invocación que lo logra y lo
// reutiliza mientras viva el contenedor. Un fallo no se guarda: la siguiente
// invocación vuelve a intentarlo.
type lazyHandler struct {
	mu      sync.Mutex
	adapter *httpRouter.APIGatewayHandler
	build   func() (*httpRouter.APIGatewayHandler, error)
}

func (l *lazyHandler) get() (*httpRouter.APIGatewayHandler, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.adapter != nil {
		return l.adapter, nil
	}
	a, err := l.build()
	if err != nil {
		return nil, err
	}
	l.adapter = a
	return a, nil
}

func (l *lazyHandler) handle(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	a, err := l.get()
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers: map[string]string{
				"Content-Type":                "application/json",
				"Access-Control-Allow-Origin": "*",
			},
			Body: `{"code":"INTERNAL","message":"Internal Server Error"}`,
		}, nil
	}
	return a.Handle(ctx, ev)
}

// buildFromEnv carga configuración, abre el almacén y arma el handler.
// El pool vive con el contenedor; no se cierra entre invocaciones.
func buildFromEnv() (*httpRouter.APIGatewayHandler, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Error().Err(err).Msg("cargar configuración")
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	repo, _, err := store.Open(context.Background(), cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("abrir almacén de clientes")
		return nil, err
	}
	return httpRouter.NewAPIGatewayHandler(
		httpRouter.NewCustomerHandler(httpRouter.NewCustomerUseCases(repo), log),
	), nil
}

func main() {
	h := &lazyHandler{build: buildFromEnv}
	lambda.Start(h.handle)
}
