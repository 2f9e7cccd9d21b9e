package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de pgx.Row / pgx.Rows
// ──────────────────────────────────────────────────────────────────────────────

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan: %d destinos para %d columnas", len(dest), len(r.vals))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.vals[i].(string)
		case **string:
			if r.vals[i] == nil {
				*p = nil
				continue
			}
			s := r.vals[i].(string)
			*p = &s
		case *decimal.Decimal:
			*p = r.vals[i].(decimal.Decimal)
		case *time.Time:
			*p = r.vals[i].(time.Time)
		default:
			return fmt.Errorf("scan: tipo no soportado %T", d)
		}
	}
	return nil
}

type fakeRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.rows[r.idx-1], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return fakeRow{vals: r.rows[r.idx-1]}.Scan(dest...)
}

var (
	created = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updated = created.Add(time.Hour)
)

func row(id string, phone any, credit string) []any {
	return []any{id, "Jane Rider", id + "@example.com", phone, decimal.RequireFromString(credit), created, updated}
}

func newJane() *entity.Customer {
	return entity.NewCustomer(entity.CustomerProps{
		ID: "c-1", Name: "Jane Rider", Email: "jane@example.com", CreatedAt: created, UpdatedAt: created,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_InsertaConGuardaDeConflicto(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)
	repo := NewCustomerRepository(q, "")

	var gotSQL string
	var gotArgs []any
	q.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, sql string, args ...interface{}) {
			gotSQL, gotArgs = sql, args
		}).
		Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

	require.NoError(t, repo.Create(context.Background(), newJane()))

	assert.Contains(t, gotSQL, `INSERT INTO "customers"`)
	assert.Contains(t, gotSQL, "ON CONFLICT (id) DO NOTHING")
	require.Len(t, gotArgs, 7)
	assert.Equal(t, "c-1", gotArgs[0])
	assert.Nil(t, gotArgs[3].(*string), "teléfono vacío se guarda como NULL")
	assert.True(t, gotArgs[4].(decimal.Decimal).IsZero())
}

func TestCreate_IDExistente_RetornaConflicto(t *testing.T) {
	tests := []struct {
		name string
		tag  pgconn.CommandTag
		err  error
	}{
		{"sin filas afectadas", pgconn.NewCommandTag("INSERT 0 0"), nil},
		{"violación única", pgconn.CommandTag{}, &pgconn.PgError{Code: "23505"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := NewMockQuerier(ctrl)
			q.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.tag, tt.err)

			err := NewCustomerRepository(q, "").Create(context.Background(), newJane())

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrConflict))
		})
	}
}

func TestCreate_ErrorDelDriver_SeEnvuelve(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)
	boom := errors.New("conexión perdida")
	q.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).Return(pgconn.CommandTag{}, boom)

	err := NewCustomerRepository(q, "").Create(context.Background(), newJane())

	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, domain.ErrConflict))
}

func TestGetByID_LeeCliente(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)
	repo := NewCustomerRepository(q, "")

	q.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "c-1").
		Return(fakeRow{vals: row("c-1", nil, "150.00")})

	c, err := repo.GetByID(context.Background(), "c-1")
	require.NoError(t, err)
	require.NotNil(t, c)

	p := c.Snapshot()
	assert.Equal(t, "c-1", p.ID)
	assert.Equal(t, "", p.Phone)
	assert.Equal(t, "150.00", p.AvailableCredit.StringFixed(2))
	assert.True(t, p.CreatedAt.Equal(created))
	assert.True(t, p.UpdatedAt.Equal(updated))
}

func TestGetByID_SinFilas_RetornaNilNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)
	q.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "x").Return(fakeRow{err: pgx.ErrNoRows})

	c, err := NewCustomerRepository(q, "").GetByID(context.Background(), "x")

	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestUpdate_UpsertIncondicional(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)

	var gotSQL string
	q.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, sql string, _ ...interface{}) { gotSQL = sql }).
		Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

	require.NoError(t, NewCustomerRepository(q, "").Update(context.Background(), newJane()))
	assert.Contains(t, gotSQL, "ON CONFLICT (id) DO UPDATE")
	assert.NotContains(t, gotSQL, "WHERE", "sin control de versión")
}

func TestDelete_BorraPorID(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)
	q.EXPECT().Exec(gomock.Any(), `DELETE FROM "public"."clientes" WHERE id = $1`, "c-1").
		Return(pgconn.NewCommandTag("DELETE 1"), nil)

	require.NoError(t, NewCustomerRepository(q, "public.clientes").Delete(context.Background(), "c-1"))
}

func TestListAll_OrdenDeInsercion(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)
	q.EXPECT().Query(gomock.Any(), gomock.Any()).
		Return(&fakeRows{rows: [][]any{row("a", "+57 300", "10"), row("b", nil, "0")}}, nil)

	list, err := NewCustomerRepository(q, "").ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID())
	assert.Equal(t, "+57 300", list[0].Snapshot().Phone)
	assert.Equal(t, "b", list[1].ID())
}

func TestListAll_ErrorDeFilas_RetornaError(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)
	boom := errors.New("cursor roto")
	q.EXPECT().Query(gomock.Any(), gomock.Any()).Return(&fakeRows{err: boom}, nil)

	_, err := NewCustomerRepository(q, "").ListAll(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestEnsureSchema_CreaTablaEIndice(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)

	var gotSQL string
	q.EXPECT().Exec(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, sql string, _ ...interface{}) { gotSQL = sql }).
		Return(pgconn.NewCommandTag("CREATE TABLE"), nil)

	require.NoError(t, EnsureSchema(context.Background(), q, ""))
	assert.Contains(t, gotSQL, `CREATE TABLE IF NOT EXISTS "customers"`)
	assert.Contains(t, gotSQL, "available_credit >= 0")
}

func TestIsUniqueViolation_DetectaCodigo23505(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("x: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otro")))
}
