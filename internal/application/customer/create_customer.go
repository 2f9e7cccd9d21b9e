package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

// CreateCustomerInput datos para crear un cliente.
type CreateCustomerInput struct {
	Name  string
	Email string
	Phone *string
}

// CreateCustomer caso de uso de alta de cliente.
type CreateCustomer struct {
	repo  repository.CustomerRepository
	newID func() string
	now   func() time.Time
}

// CreateOption ajusta dependencias secundarias (reloj, generador de IDs).
type CreateOption func(*CreateCustomer)

// WithClock fija la fuente de tiempo.
func WithClock(now func() time.Time) CreateOption {
	return func(uc *CreateCustomer) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithIDGenerator fija el generador de identificadores.
func WithIDGenerator(gen func() string) CreateOption {
	return func(uc *CreateCustomer) {
		if gen != nil {
			uc.newID = gen
		}
	}
}

// NewCreateCustomer construye el caso de uso.
func NewCreateCustomer(repo repository.CustomerRepository, opts ...CreateOption) *CreateCustomer {
	uc := &CreateCustomer{repo: repo, newID: uuid.NewString, now: entity.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute valida, construye un cliente con crédito 0 y lo persiste.
func (uc *CreateCustomer) Execute(ctx context.Context, in CreateCustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("Name is required.")
	}
	email := normalizeEmail(in.Email)
	if !validEmail(email) {
		return nil, domain.NewValidationError("Valid email is required.", map[string]string{"email": in.Email})
	}
	var phone string
	if in.Phone != nil {
		phone = strings.TrimSpace(*in.Phone)
	}

	now := uc.now().UTC()
	customer := entity.NewCustomer(entity.CustomerProps{
		ID:        uc.newID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}
