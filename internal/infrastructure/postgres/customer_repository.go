package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// DefaultCustomerTable nombre de tabla cuando la configuración no indica otro.
const DefaultCustomerTable = "customers"

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q     Querier
	table string
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
// table vacío usa DefaultCustomerTable.
func NewCustomerRepository(q Querier, table string) *CustomerRepo {
	if table == "" {
		table = DefaultCustomerTable
	}
	return &CustomerRepo{q: q, table: quoteTable(table)}
}

const customerColumns = `id, name, email, phone, available_credit, created_at, updated_at`

// Create inserta el cliente solo si el ID no existe.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	p := customer.Snapshot()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`, r.table, customerColumns)
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Email, nullableText(p.Phone), p.AvailableCredit, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert customer %s: %w", p.ID, domain.ErrConflict)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("insert customer %s: %w", p.ID, domain.ErrConflict)
	}
	return nil
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, customerColumns, r.table)
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Update reemplaza el registro completo. Sin bloqueo optimista: gana la última escritura.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	p := customer.Snapshot()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			available_credit = EXCLUDED.available_credit,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at`, r.table, customerColumns)
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Email, nullableText(p.Phone), p.AvailableCredit, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// ListAll recorre la tabla completa en el orden nativo del motor.
func (r *CustomerRepo) ListAll(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, fmt.Sprintf(`SELECT %s FROM %s`, customerColumns, r.table))
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var (
		p      entity.CustomerProps
		phone  *string
		credit decimal.Decimal
		ca, ua time.Time
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &phone, &credit, &ca, &ua); err != nil {
		return nil, err
	}
	if phone != nil {
		p.Phone = *phone
	}
	p.AvailableCredit = credit
	p.CreatedAt = ca.UTC()
	p.UpdatedAt = ua.UTC()
	return entity.HydrateCustomer(p), nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
