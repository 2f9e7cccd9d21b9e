package dto

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/customers-api/internal/domain/entity"
)

// CreateCustomerRequest cuerpo de POST /customers.
type CreateCustomerRequest struct {
	Name  string  `json:"name" example:"Jane Rider"`
	Email string  `json:"email" example:"jane@example.com"`
	Phone *string `json:"phone,omitempty" example:"+57 300 000 0000"`
}

// UpdateCustomerRequest cuerpo de PUT /customers/{id}. Campos ausentes no se tocan.
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// AddCreditRequest cuerpo de POST /customers/{id}/add-credit.
// Amount se guarda crudo: se acepta número JSON o texto numérico.
type AddCreditRequest struct {
	Amount json.RawMessage `json:"amount" swaggertype:"number" example:"150"`
}

// AmountValue interpreta Amount. Devuelve NaN si falta o no es numérico,
// para que la validación del caso de uso lo rechace.
func (r AddCreditRequest) AmountValue() float64 {
	raw := strings.TrimSpace(string(r.Amount))
	if raw == "" || raw == "null" {
		return math.NaN()
	}
	var n float64
	if err := json.Unmarshal(r.Amount, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(r.Amount, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return f
		}
	}
	return math.NaN()
}

// CustomerResponse forma en el cable (y en el almacén) de un cliente.
type CustomerResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	AvailableCredit float64 `json:"availableCredit"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToCustomerResponse serializa el snapshot de un cliente.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	p := c.Snapshot()
	return &CustomerResponse{
		ID:              p.ID,
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		AvailableCredit: p.AvailableCredit.InexactFloat64(),
		CreatedAt:       entity.FormatTimestamp(p.CreatedAt),
		UpdatedAt:       entity.FormatTimestamp(p.UpdatedAt),
	}
}

// ToCustomerResponses serializa una lista; nunca devuelve nil.
func ToCustomerResponses(list []*entity.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCustomerResponse(c))
	}
	return out
}

// ToEntity reconstruye el agregado desde su registro.
func (r CustomerResponse) ToEntity() (*entity.Customer, error) {
	createdAt, err := entity.ParseTimestamp(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := entity.ParseTimestamp(r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return entity.HydrateCustomer(entity.CustomerProps{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		AvailableCredit: decimal.NewFromFloat(r.AvailableCredit),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}), nil
}
