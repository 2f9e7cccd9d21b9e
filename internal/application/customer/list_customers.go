package customer

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

// ListCustomers caso de uso de listado completo (sin paginación).
type ListCustomers struct {
	repo repository.CustomerRepository
}

// NewListCustomers construye el caso de uso.
func NewListCustomers(repo repository.CustomerRepository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

// Execute lista todos los clientes. Con sortByCredit ordena de mayor a menor crédito
// (estable); sin él respeta el orden del almacén.
func (uc *ListCustomers) Execute(ctx context.Context, sortByCredit bool) ([]*entity.Customer, error) {
	items, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if sortByCredit {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].AvailableCredit().GreaterThan(items[j].AvailableCredit())
		})
	}
	return items, nil
}
