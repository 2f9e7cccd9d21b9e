package customer

import (
	"context"
	"fmt"

	"github.com/jhoicas/customers-api/internal/domain/repository"
)

// DeleteCustomer caso de uso de baja definitiva (sin borrado lógico).
type DeleteCustomer struct {
	repo repository.CustomerRepository
}

// NewDeleteCustomer construye el caso de uso.
func NewDeleteCustomer(repo repository.CustomerRepository) *DeleteCustomer {
	return &DeleteCustomer{repo: repo}
}

// Execute exige que el cliente exista antes de borrarlo.
func (uc *DeleteCustomer) Execute(ctx context.Context, id string) error {
	if _, err := load(ctx, uc.repo, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	return nil
}
