package bookings

import (
	"context"
	"time"

	"hotel/internal/domain"
)

// BookingRepository defines the store operations the service consumes.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, to domain.BookingStatus, allowedFrom ...domain.BookingStatus) (bool, error)
	GetForPeriod(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// RoomReader resolves the room referenced by a booking.
type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ClientReader checks that the referenced client exists.
type ClientReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
