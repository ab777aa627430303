package rooms

import (
	"context"
	"time"

	"hotel/internal/domain"
)

// RoomRepository defines the store operations the service consumes.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetAll(ctx context.Context) ([]*domain.Room, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, r *domain.Room) error
	Update(ctx context.Context, r *domain.Room) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// BookingReader is the slice of the booking store needed for the
// holistic availability listing.
type BookingReader interface {
	BookedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) (map[int64]bool, error)
}
