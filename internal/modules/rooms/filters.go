package rooms

import (
	"hotel/internal/domain"
	"hotel/internal/query"
)

func ByID(id int64) query.Predicate[*domain.Room] {
	return func(r *domain.Room) bool { return r.ID == id }
}

func ByCategory(category domain.RoomCategory) query.Predicate[*domain.Room] {
	return func(r *domain.Room) bool { return r.Category == category }
}

// ByCapacityRange keeps rooms with min <= capacity <= max; a zero bound
// is open.
func ByCapacityRange(min, max int) query.Predicate[*domain.Room] {
	return func(r *domain.Room) bool {
		if min > 0 && r.Capacity < min {
			return false
		}
		if max > 0 && r.Capacity > max {
			return false
		}
		return true
	}
}

func ByPriceRange(min, max float64) query.Predicate[*domain.Room] {
	return func(r *domain.Room) bool {
		if min > 0 && r.PricePerNight < min {
			return false
		}
		if max > 0 && r.PricePerNight > max {
			return false
		}
		return true
	}
}

func ByAvailability(available bool) query.Predicate[*domain.Room] {
	return func(r *domain.Room) bool { return r.IsAvailable == available }
}

// Sorters maps sort_by values to key orderings for the composer.
var Sorters = map[string]query.Less[*domain.Room]{
	"id":              func(a, b *domain.Room) bool { return a.ID < b.ID },
	"room_number":     func(a, b *domain.Room) bool { return a.RoomNumber < b.RoomNumber },
	"capacity":        func(a, b *domain.Room) bool { return a.Capacity < b.Capacity },
	"price_per_night": func(a, b *domain.Room) bool { return a.PricePerNight < b.PricePerNight },
}
