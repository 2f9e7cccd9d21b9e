package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/customers-api/internal/domain"
)

func TestErrorKinds_ClasificaPorTipo(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		notFound   bool
	}{
		{"validation", domain.NewValidationError("Name is required."), true, false},
		{"not found", domain.NewNotFoundError("Customer x not found", map[string]string{"id": "x"}), false, true},
		{"domain", domain.NewDomainError("regla violada"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("capa superior: %w", tt.err)

			assert.True(t, domain.IsDomain(wrapped), "todo error clasificado es de dominio")
			assert.Equal(t, tt.validation, domain.IsValidation(wrapped))
			assert.Equal(t, tt.notFound, domain.IsNotFound(wrapped))
			assert.Equal(t, tt.validation, errors.Is(wrapped, domain.ErrInvalidInput))
			assert.Equal(t, tt.notFound, errors.Is(wrapped, domain.ErrNotFound))
		})
	}
}

func TestErrorNoClasificado_NoEsDeDominio(t *testing.T) {
	err := fmt.Errorf("insert customer: %w", domain.ErrConflict)

	assert.False(t, domain.IsDomain(err))
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestError_MensajeYDetalles(t *testing.T) {
	e := domain.NewNotFoundError("Customer x not found", "x")
	assert.Equal(t, "Customer x not found", e.Message)
	assert.Equal(t, "x", e.Details)
	assert.Contains(t, e.Error(), "not_found")

	multi := domain.NewValidationError("bad", 1, 2)
	assert.Equal(t, []any{1, 2}, multi.Details)

	de, ok := domain.AsError(fmt.Errorf("x: %w", multi))
	assert.True(t, ok)
	assert.Same(t, multi, de)
}
