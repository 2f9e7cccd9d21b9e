package customer

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

// AddCreditInput ID del cliente y monto a abonar.
type AddCreditInput struct {
	ID     string
	Amount float64
}

// AddCredit caso de uso de abono de crédito de tienda. No existe operación de débito.
type AddCredit struct {
	repo repository.CustomerRepository
}

// NewAddCredit construye el caso de uso.
func NewAddCredit(repo repository.CustomerRepository) *AddCredit {
	return &AddCredit{repo: repo}
}

// Execute valida ID y monto antes de tocar el almacén.
func (uc *AddCredit) Execute(ctx context.Context, in AddCreditInput) (*entity.Customer, error) {
	if err := requireID(in.ID); err != nil {
		return nil, err
	}
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return nil, domain.NewValidationError("amount must be a positive number")
	}
	found, err := load(ctx, uc.repo, in.ID)
	if err != nil {
		return nil, err
	}
	if err := found.AddCredit(decimal.NewFromFloat(in.Amount)); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("add credit to customer %s: %w", in.ID, err)
	}
	return found, nil
}
