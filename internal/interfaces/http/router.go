package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Customers *CustomerHandler
	BasePath  string // prefijo opcional, p. ej. "/api"
	AppName   string
}

// Router registra las rutas de la API. El despacho de /customers lo hace CustomerHandler;
// Fiber solo transporta la petición.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	var api fiber.Router = app
	if deps.BasePath != "" {
		api = app.Group(deps.BasePath)
	}

	handle := FiberHandler(deps.Customers)
	api.All("/customers", handle)
	api.All("/customers/*", handle)

	// Cualquier otra ruta: mismo cuerpo que un no-match del dispatcher.
	app.Use(func(c *fiber.Ctx) error {
		return writeResponse(c, jsonResponse(fiber.StatusNotFound, errorBody(CodeRouteNotFound, "Route not found")))
	})
}

// FiberHandler convierte el contexto de Fiber en Request y escribe la Response.
func FiberHandler(h *CustomerHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := Request{
			Method: c.Method(),
			Path:   c.Path(),
			Query:  c.Queries(),
			Body:   string(c.Body()),
		}
		return writeResponse(c, h.Handle(c.UserContext(), req))
	}
}

func writeResponse(c *fiber.Ctx, resp Response) error {
	for k, v := range resp.Headers {
		c.Set(k, v)
	}
	c.Status(resp.StatusCode)
	if resp.Body == "" {
		return nil
	}
	return c.SendString(resp.Body)
}
