package repository

import (
	"context"

	"github.com/jhoicas/customers-api/internal/domain/entity"
)

//go:generate mockgen -destination=mock/customer_repository_mock.go -package=mock . CustomerRepository

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create inserta solo si el ID no existe; si existe devuelve un error que envuelve domain.ErrConflict.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve (nil, nil) cuando el cliente no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// Update reemplaza el registro completo por ID, sin control de versión (gana la última escritura).
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	// ListAll recorre todo el almacén, sin orden ni paginación.
	ListAll(ctx context.Context) ([]*entity.Customer, error)
}
