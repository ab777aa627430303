package bookings

import (
	"time"

	"hotel/internal/domain"
	"hotel/internal/query"
)

func ByID(id int64) query.Predicate[*domain.Booking] {
	return func(b *domain.Booking) bool { return b.ID == id }
}

func ByClientID(clientID int64) query.Predicate[*domain.Booking] {
	return func(b *domain.Booking) bool { return b.ClientID == clientID }
}

func ByRoomID(roomID int64) query.Predicate[*domain.Booking] {
	return func(b *domain.Booking) bool { return b.RoomID == roomID }
}

func ByStatus(status domain.BookingStatus) query.Predicate[*domain.Booking] {
	return func(b *domain.Booking) bool { return b.Status == status }
}

// ByDateRange keeps bookings whose stay touches [from, to]. A zero
// bound is open.
func ByDateRange(from, to time.Time) query.Predicate[*domain.Booking] {
	return func(b *domain.Booking) bool {
		if !from.IsZero() && b.CheckOut.Before(from) {
			return false
		}
		if !to.IsZero() && b.CheckIn.After(to) {
			return false
		}
		return true
	}
}

func ByTotalRange(min, max float64) query.Predicate[*domain.Booking] {
	return func(b *domain.Booking) bool {
		if min > 0 && b.TotalSum < min {
			return false
		}
		if max > 0 && b.TotalSum > max {
			return false
		}
		return true
	}
}

// Sorters maps sort_by values to key orderings for the composer.
var Sorters = map[string]query.Less[*domain.Booking]{
	"id":         func(a, b *domain.Booking) bool { return a.ID < b.ID },
	"check_in":   func(a, b *domain.Booking) bool { return a.CheckIn.Before(b.CheckIn) },
	"check_out":  func(a, b *domain.Booking) bool { return a.CheckOut.Before(b.CheckOut) },
	"total_sum":  func(a, b *domain.Booking) bool { return a.TotalSum < b.TotalSum },
	"created_at": func(a, b *domain.Booking) bool { return a.CreatedAt.Before(b.CreatedAt) },
	"client_id":  func(a, b *domain.Booking) bool { return a.ClientID < b.ClientID },
	"room_id":    func(a, b *domain.Booking) bool { return a.RoomID < b.RoomID },
}
