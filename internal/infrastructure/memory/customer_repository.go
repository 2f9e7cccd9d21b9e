// Package memory implementa los repositorios en memoria del proceso.
// Se usa en tests y en desarrollo local (STORE_DRIVER=memory).
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository guarda snapshots, nunca el agregado vivo: lo que el llamador
// haga con el *entity.Customer después de Create/Update no altera el almacén.
type CustomerRepository struct {
	mu    sync.RWMutex
	order []string
	store map[string]entity.CustomerProps
}

// NewCustomerRepository construye un almacén vacío.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{store: make(map[string]entity.CustomerProps)}
}

// Create inserta si el ID no existe.
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := customer.ID()
	if _, ok := r.store[id]; ok {
		return fmt.Errorf("create customer %s: %w", id, domain.ErrConflict)
	}
	r.store[id] = customer.Snapshot()
	r.order = append(r.order, id)
	return nil
}

// GetByID devuelve una copia hidratada o (nil, nil).
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	props, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	return entity.HydrateCustomer(props), nil
}

// Update reemplaza incondicionalmente (upsert, como un put por clave).
func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := customer.ID()
	if _, ok := r.store[id]; !ok {
		r.order = append(r.order, id)
	}
	r.store[id] = customer.Snapshot()
	return nil
}

// Delete elimina por ID; borrar un ID inexistente no es error.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return nil
	}
	delete(r.store, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListAll devuelve todos los clientes en orden de inserción.
func (r *CustomerRepository) ListAll(ctx context.Context) ([]*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, entity.HydrateCustomer(r.store[id]))
	}
	return out, nil
}

// Len cantidad de clientes guardados.
func (r *CustomerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}
