package repository

import (
	"context"
	"errors"
	"time"

	"hotel/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrRoomBusy is returned when a write would create an overlapping
	// active booking on the same room.
	ErrRoomBusy = errors.New("room already booked for these dates")

	// ErrMissingReference is returned when client_id or room_id points
	// at a row that does not exist.
	ErrMissingReference = errors.New("referenced client or room not found")
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ClientID  int64     `gorm:"column:client_id"`
	RoomID    int64     `gorm:"column:room_id"`
	CheckIn   time.Time `gorm:"column:check_in"`
	CheckOut  time.Time `gorm:"column:check_out"`
	TotalSum  float64   `gorm:"column:total_sum"`
	Status    string    `gorm:"column:status"`
	Notes     *string   `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		ClientID:  m.ClientID,
		RoomID:    m.RoomID,
		CheckIn:   m.CheckIn,
		CheckOut:  m.CheckOut,
		TotalSum:  m.TotalSum,
		Status:    domain.BookingStatus(m.Status),
		Notes:     deref(m.Notes),
		CreatedAt: m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		ClientID:  b.ClientID,
		RoomID:    b.RoomID,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		TotalSum:  b.TotalSum,
		Status:    string(b.Status),
		Notes:     optional(b.Notes),
		CreatedAt: b.CreatedAt,
	}
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetPage(ctx context.Context, size, page int) ([]*domain.Booking, error) {
	if page < 1 {
		page = 1
	}
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Order("id").
		Limit(size).
		Offset((page - 1) * size).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&cnt)
	return cnt, tx.Error
}

// CountOverlapping counts active (pending/confirmed) bookings on the
// room whose half-open [check_in, check_out) interval intersects the
// candidate range. excludeID skips the booking being edited.
func (r *BookingRepository) CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (int64, error) {
	return countOverlapping(r.db.WithContext(ctx), roomID, checkIn, checkOut, excludeID)
}

func countOverlapping(db *gorm.DB, roomID int64, checkIn, checkOut time.Time, excludeID int64) (int64, error) {
	var cnt int64
	tx := db.Model(&bookingModel{}).
		Where("room_id = ? AND id <> ?", roomID, excludeID).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&cnt)
	return cnt, tx.Error
}

// Create inserts the booking. The overlap check and the insert run in
// one transaction so concurrent requests for the same room cannot both
// pass the check; on Postgres the idx_no_room_overlap exclusion
// constraint backs this up at the store level.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.BlocksRoom() {
			cnt, err := countOverlapping(tx, b.RoomID, b.CheckIn, b.CheckOut, 0)
			if err != nil {
				return err
			}
			if cnt > 0 {
				return ErrRoomBusy
			}
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		b.ID = m.ID
		return nil
	})
	return mapOverlapError(err)
}

// Update replaces the mutable fields. created_at is immutable and never
// written. Runs the same transactional overlap guard as Create, with
// the booking's own id excluded.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) (bool, error) {
	var updated bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.BlocksRoom() {
			cnt, err := countOverlapping(tx, b.RoomID, b.CheckIn, b.CheckOut, b.ID)
			if err != nil {
				return err
			}
			if cnt > 0 {
				return ErrRoomBusy
			}
		}

		m := toBookingModel(b)
		res := tx.Model(&bookingModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
			"client_id": m.ClientID,
			"room_id":   m.RoomID,
			"check_in":  m.CheckIn,
			"check_out": m.CheckOut,
			"total_sum": m.TotalSum,
			"status":    m.Status,
			"notes":     m.Notes,
		})
		if res.Error != nil {
			return res.Error
		}
		updated = res.RowsAffected > 0
		return nil
	})
	return updated, mapOverlapError(err)
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// UpdateStatus performs a guarded transition: the row is only touched
// when its current status is one of allowedFrom. Returns false when the
// guard rejected the transition (or the id is unknown).
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, to domain.BookingStatus, allowedFrom ...domain.BookingStatus) (bool, error) {
	from := make([]string, 0, len(allowedFrom))
	for _, s := range allowedFrom {
		from = append(from, string(s))
	}

	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", string(to))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// GetForPeriod returns bookings whose stay intersects [from, to].
func (r *BookingRepository) GetForPeriod(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("check_in < ? AND check_out > ?", to, from).
		Order("check_in").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

// BookedRoomIDs returns ids of rooms held by an active booking that
// overlaps the given range.
func (r *BookingRepository) BookedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) (map[int64]bool, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Distinct().
		Pluck("room_id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func mapOverlapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "idx_no_room_overlap" {
		return ErrRoomBusy
	}
	return err
}
