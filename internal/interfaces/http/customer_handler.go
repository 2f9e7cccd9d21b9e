package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhoicas/customers-api/internal/application/customer"
	"github.com/jhoicas/customers-api/internal/application/dto"
	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/internal/domain/repository"
	"github.com/jhoicas/customers-api/pkg/logger"
)

// CustomerUseCases casos de uso que atiende el handler.
type CustomerUseCases struct {
	Create    *customer.CreateCustomer
	Get       *customer.GetCustomer
	Update    *customer.UpdateCustomer
	Delete    *customer.DeleteCustomer
	AddCredit *customer.AddCredit
	List      *customer.ListCustomers
}

// CustomerHandler traduce peticiones a casos de uso y resultados/errores a respuestas.
// Inmutable tras construirse; se comparte entre peticiones.
type CustomerHandler struct {
	uc  CustomerUseCases
	log *logger.Logger
}

// NewCustomerHandler construye el handler. log nil equivale a logger.Nop().
func NewCustomerHandler(uc CustomerUseCases, log *logger.Logger) *CustomerHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CustomerHandler{uc: uc, log: log}
}

type routeKind int

const (
	routeNone routeKind = iota
	routeCollection
	routeItem
	routeAddCredit
)

// matchRoute reconoce el sufijo de la ruta, de más largo a más corto, para tolerar
// prefijos de stage o base path (/dev, /api).
func matchRoute(path string) (routeKind, string) {
	segs := strings.Split(strings.Trim(path, "/"), "/")
	n := len(segs)
	switch {
	case n >= 3 && segs[n-1] == "add-credit" && segs[n-3] == "customers":
		return routeAddCredit, segs[n-2]
	case n >= 2 && segs[n-2] == "customers":
		return routeItem, segs[n-1]
	case n >= 1 && segs[n-1] == "customers":
		return routeCollection, ""
	}
	return routeNone, ""
}

// Handle atiende una petición: Received → Routed → Validated → Executed → Mapped → Responded.
// Nunca devuelve error; cualquier fallo termina en una respuesta mapeada.
func (h *CustomerHandler) Handle(ctx context.Context, req Request) Response {
	kind, rawID := matchRoute(req.Path)
	id, err := url.PathUnescape(rawID)
	if err != nil {
		id = rawID
	}
	method := strings.ToUpper(req.Method)

	switch {
	case kind == routeCollection && method == http.MethodGet:
		return h.list(ctx, req)
	case kind == routeCollection && method == http.MethodPost:
		return h.create(ctx, req)
	case kind == routeItem && method == http.MethodGet:
		return h.get(ctx, id, req)
	case kind == routeItem && method == http.MethodPut:
		return h.update(ctx, id, req)
	case kind == routeItem && method == http.MethodDelete:
		return h.delete(ctx, id, req)
	case kind == routeAddCredit && method == http.MethodPost:
		return h.addCredit(ctx, id, req)
	}
	return jsonResponse(http.StatusNotFound, errorBody(CodeRouteNotFound, "Route not found"))
}

// list godoc
// @Summary      Listar clientes
// @Description  Devuelve todos los clientes. Con sortByCredit (true, 1, yes) ordena de mayor a menor crédito.
// @Tags         Customers
// @Produce      json
// @Param        sortByCredit  query     string  false  "Ordenar por crédito disponible"
// @Success      200           {array}   dto.CustomerResponse
// @Failure      500           {object}  dto.ErrorResponse
// @Router       /customers [get]
func (h *CustomerHandler) list(ctx context.Context, req Request) Response {
	items, err := h.uc.List.Execute(ctx, truthy(req.Query["sortByCredit"]))
	if err != nil {
		return h.fail(req, err)
	}
	return jsonResponse(http.StatusOK, dto.ToCustomerResponses(items))
}

// create godoc
// @Summary      Crear cliente
// @Description  Alta de cliente con crédito inicial 0. El email se normaliza (trim + minúsculas). Responde 409 si el almacén rechaza el alta por un cliente ya existente.
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Customer already exists"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /customers [post]
func (h *CustomerHandler) create(ctx context.Context, req Request) Response {
	var in dto.CreateCustomerRequest
	if err := decodeJSON(req.Body, &in); err != nil {
		return h.fail(req, err)
	}
	created, err := h.uc.Create.Execute(ctx, customer.CreateCustomerInput{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	})
	if err != nil {
		return h.fail(req, err)
	}
	return jsonResponse(http.StatusCreated, dto.ToCustomerResponse(created))
}

// get godoc
// @Summary      Obtener cliente
// @Tags         Customers
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) get(ctx context.Context, id string, req Request) Response {
	found, err := h.uc.Get.Execute(ctx, id)
	if err != nil {
		return h.fail(req, err)
	}
	return jsonResponse(http.StatusOK, dto.ToCustomerResponse(found))
}

// update godoc
// @Summary      Actualizar cliente
// @Description  Actualización parcial: los campos ausentes no cambian; phone vacío lo borra.
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "ID del cliente"
// @Param        body  body      dto.UpdateCustomerRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /customers/{id} [put]
func (h *CustomerHandler) update(ctx context.Context, id string, req Request) Response {
	var in dto.UpdateCustomerRequest
	if err := decodeJSON(req.Body, &in); err != nil {
		return h.fail(req, err)
	}
	updated, err := h.uc.Update.Execute(ctx, customer.UpdateCustomerInput{
		ID:    id,
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	})
	if err != nil {
		return h.fail(req, err)
	}
	return jsonResponse(http.StatusOK, dto.ToCustomerResponse(updated))
}

// delete godoc
// @Summary      Eliminar cliente
// @Tags         Customers
// @Param        id   path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) delete(ctx context.Context, id string, req Request) Response {
	if err := h.uc.Delete.Execute(ctx, id); err != nil {
		return h.fail(req, err)
	}
	return noContent()
}

// addCredit godoc
// @Summary      Abonar crédito
// @Description  Suma un monto positivo al crédito disponible (redondeo a 2 decimales).
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "ID del cliente"
// @Param        body  body      dto.AddCreditRequest  true  "Monto"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /customers/{id}/add-credit [post]
func (h *CustomerHandler) addCredit(ctx context.Context, id string, req Request) Response {
	var in dto.AddCreditRequest
	if err := decodeJSON(req.Body, &in); err != nil {
		return h.fail(req, err)
	}
	updated, err := h.uc.AddCredit.Execute(ctx, customer.AddCreditInput{ID: id, Amount: in.AmountValue()})
	if err != nil {
		return h.fail(req, err)
	}
	return jsonResponse(http.StatusOK, dto.ToCustomerResponse(updated))
}

// fail es el único punto de traducción de errores. Los no clasificados se registran
// completos y se devuelven genéricos.
func (h *CustomerHandler) fail(req Request, err error) Response {
	status, code := statusFromError(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("method", req.Method).Str("path", req.Path).Msg("error no controlado")
		return jsonResponse(status, errorBody(code, "Internal Server Error"))
	}
	if status == http.StatusConflict {
		h.log.Warn().Err(err).Str("path", req.Path).Msg("conflicto al persistir")
		return jsonResponse(status, errorBody(code, "Customer already exists"))
	}
	msg := err.Error()
	if de, ok := domain.AsError(err); ok {
		msg = de.Message
	}
	return jsonResponse(status, errorBody(code, msg))
}

// NewCustomerUseCases construye los seis casos de uso sobre un mismo repositorio.
func NewCustomerUseCases(repo repository.CustomerRepository, opts ...customer.CreateOption) CustomerUseCases {
	return CustomerUseCases{
		Create:    customer.NewCreateCustomer(repo, opts...),
		Get:       customer.NewGetCustomer(repo),
		Update:    customer.NewUpdateCustomer(repo),
		Delete:    customer.NewDeleteCustomer(repo),
		AddCredit: customer.NewAddCredit(repo),
		List:      customer.NewListCustomers(repo),
	}
}
