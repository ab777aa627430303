package clients

import (
	"strings"

	"hotel/internal/domain"
	"hotel/internal/query"
)

func ByID(id int64) query.Predicate[*domain.Client] {
	return func(c *domain.Client) bool { return c.ID == id }
}

func BySurnamePrefix(prefix string) query.Predicate[*domain.Client] {
	prefix = strings.ToLower(prefix)
	return func(c *domain.Client) bool {
		return strings.HasPrefix(strings.ToLower(c.Surname), prefix)
	}
}

func ByNameContains(sub string) query.Predicate[*domain.Client] {
	sub = strings.ToLower(sub)
	return func(c *domain.Client) bool {
		return strings.Contains(strings.ToLower(c.Name), sub)
	}
}

func ByPhonePrefix(prefix string) query.Predicate[*domain.Client] {
	return func(c *domain.Client) bool {
		return strings.HasPrefix(c.Phone, prefix)
	}
}

// Sorters maps sort_by values to key orderings for the composer.
var Sorters = map[string]query.Less[*domain.Client]{
	"id":      func(a, b *domain.Client) bool { return a.ID < b.ID },
	"surname": func(a, b *domain.Client) bool { return a.Surname < b.Surname },
	"name":    func(a, b *domain.Client) bool { return a.Name < b.Name },
	"phone":   func(a, b *domain.Client) bool { return a.Phone < b.Phone },
}
