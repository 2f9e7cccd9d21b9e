package customer

import (
	"context"
	"fmt"

	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

// GetCustomer caso de uso de consulta por ID.
type GetCustomer struct {
	repo repository.CustomerRepository
}

// NewGetCustomer construye el caso de uso.
func NewGetCustomer(repo repository.CustomerRepository) *GetCustomer {
	return &GetCustomer{repo: repo}
}

// Execute devuelve el cliente o un NotFoundError.
func (uc *GetCustomer) Execute(ctx context.Context, id string) (*entity.Customer, error) {
	return load(ctx, uc.repo, id)
}

// load valida el ID y carga el agregado; compartido por los casos de uso que necesitan uno existente.
func load(ctx context.Context, repo repository.CustomerRepository, id string) (*entity.Customer, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	found, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}
	if found == nil {
		return nil, notFound(id)
	}
	return found, nil
}
