package customer

import (
	"regexp"
	"strings"

	"github.com/jhoicas/customers-api/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeEmail recorta y pasa a minúsculas.
func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id is required")
	}
	return nil
}

func notFound(id string) error {
	return domain.NewNotFoundError("Customer "+id+" not found", map[string]string{"id": id})
}
