package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

// UpdateCustomerInput campos editables; nil = sin cambio. Phone vacío borra el teléfono.
type UpdateCustomerInput struct {
	ID    string
	Name  *string
	Email *string
	Phone *string
}

// UpdateCustomer caso de uso de edición de datos de contacto.
type UpdateCustomer struct {
	repo repository.CustomerRepository
}

// NewUpdateCustomer construye el caso de uso.
func NewUpdateCustomer(repo repository.CustomerRepository) *UpdateCustomer {
	return &UpdateCustomer{repo: repo}
}

// Execute carga, valida el patch completo y solo entonces muta y persiste.
// Sin control de concurrencia: dos updates simultáneos, gana el último.
func (uc *UpdateCustomer) Execute(ctx context.Context, in UpdateCustomerInput) (*entity.Customer, error) {
	found, err := load(ctx, uc.repo, in.ID)
	if err != nil {
		return nil, err
	}

	var patch entity.CustomerPatch
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("Name cannot be blank")
		}
		patch.Name = &name
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if !validEmail(email) {
			return nil, domain.NewValidationError("Email is invalid", map[string]string{"email": *in.Email})
		}
		patch.Email = &email
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		patch.Phone = &phone
	}

	found.Update(patch)
	if err := uc.repo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("update customer %s: %w", in.ID, err)
	}
	return found, nil
}
