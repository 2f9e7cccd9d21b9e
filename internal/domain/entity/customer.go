package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/customers-api/internal/domain"
)

// CreditScale decimales con los que se guarda el crédito disponible.
const CreditScale = 2

// CustomerProps es la vista plana de un cliente. Es un valor: copiarlo o
// modificarlo nunca afecta al agregado del que salió.
type CustomerProps struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	AvailableCredit decimal.Decimal // crédito de tienda, nunca negativo
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CustomerPatch campos editables; nil significa "no tocar".
type CustomerPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// Customer agregado de cliente. Es el único punto donde se aplican las
// invariantes de identidad y crédito; el estado solo se expone vía Snapshot.
type Customer struct {
	props CustomerProps
	now   func() time.Time
}

// NewCustomer crea un cliente nuevo. El crédito inicia siempre en 0.
// No valida contenido: eso es responsabilidad del caso de uso.
func NewCustomer(props CustomerProps) *Customer {
	props.AvailableCredit = decimal.Zero
	return HydrateCustomer(props)
}

// HydrateCustomer reconstruye un cliente desde su forma persistida.
func HydrateCustomer(props CustomerProps) *Customer {
	props.AvailableCredit = props.AvailableCredit.Round(CreditScale)
	return &Customer{props: props, now: Now}
}

// WithClock reemplaza la fuente de tiempo (tests).
func (c *Customer) WithClock(now func() time.Time) *Customer {
	if now != nil {
		c.now = now
	}
	return c
}

// ID identificador inmutable.
func (c *Customer) ID() string { return c.props.ID }

// AvailableCredit saldo actual.
func (c *Customer) AvailableCredit() decimal.Decimal { return c.props.AvailableCredit }

// Snapshot devuelve una copia independiente de todos los campos.
func (c *Customer) Snapshot() CustomerProps { return c.props }

// Update sobrescribe solo los campos presentes en el patch y refresca UpdatedAt.
// El crédito no se modifica.
func (c *Customer) Update(p CustomerPatch) {
	if p.Name != nil {
		c.props.Name = *p.Name
	}
	if p.Email != nil {
		c.props.Email = *p.Email
	}
	if p.Phone != nil {
		c.props.Phone = *p.Phone
	}
	c.touch()
}

// AddCredit suma amount al saldo, redondeado a 2 decimales.
func (c *Customer) AddCredit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.NewDomainError("Credit amount must be a positive number.", amount.String())
	}
	c.props.AvailableCredit = c.props.AvailableCredit.Add(amount).Round(CreditScale)
	c.touch()
	return nil
}

func (c *Customer) touch() {
	t := c.now()
	if t.Before(c.props.CreatedAt) {
		t = c.props.CreatedAt
	}
	c.props.UpdatedAt = t
}

// Now instante actual en UTC con precisión de milisegundos (la del formato ISO-8601 persistido).
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
