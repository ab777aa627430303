package repository

import (
	"context"
	"errors"

	"hotel/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrRoomNumberTaken is returned when an insert/update would break the
// room_number uniqueness invariant.
var ErrRoomNumberTaken = errors.New("room number already taken")

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64   `gorm:"column:id;primaryKey"`
	RoomNumber    string  `gorm:"column:room_number;uniqueIndex:idx_rooms_number"`
	Capacity      int     `gorm:"column:capacity"`
	IsAvailable   bool    `gorm:"column:is_available"`
	Category      string  `gorm:"column:category"`
	PricePerNight float64 `gorm:"column:price_per_night"`
	Description   *string `gorm:"column:description"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:            m.ID,
		RoomNumber:    m.RoomNumber,
		Capacity:      m.Capacity,
		IsAvailable:   m.IsAvailable,
		Category:      domain.RoomCategory(m.Category),
		PricePerNight: m.PricePerNight,
		Description:   deref(m.Description),
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		Capacity:      r.Capacity,
		IsAvailable:   r.IsAvailable,
		Category:      string(r.Category),
		PricePerNight: r.PricePerNight,
		Description:   optional(r.Description),
	}
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetAll(ctx context.Context) ([]*domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) GetPage(ctx context.Context, size, page int) ([]*domain.Room, error) {
	if page < 1 {
		page = 1
	}
	var models []roomModel
	tx := r.db.WithContext(ctx).
		Order("id").
		Limit(size).
		Offset((page - 1) * size).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	taken, err := r.NumberExists(ctx, room.RoomNumber, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrRoomNumberTaken
	}

	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapRoomNumberError(tx.Error)
	}
	room.ID = m.ID
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) (bool, error) {
	taken, err := r.NumberExists(ctx, room.RoomNumber, room.ID)
	if err != nil {
		return false, err
	}
	if taken {
		return false, ErrRoomNumberTaken
	}

	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", room.ID).Updates(map[string]interface{}{
		"room_number":     m.RoomNumber,
		"capacity":        m.Capacity,
		"is_available":    m.IsAvailable,
		"category":        m.Category,
		"price_per_night": m.PricePerNight,
		"description":     m.Description,
	})
	if tx.Error != nil {
		return false, mapRoomNumberError(tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *RoomRepository) NumberExists(ctx context.Context, number string, excludeID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("room_number = ? AND id <> ?", number, excludeID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *RoomRepository) GetPriceByID(ctx context.Context, roomID int64) (float64, error) {
	var price float64
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Select("price_per_night").
		Where("id = ?", roomID).
		Scan(&price)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return price, nil
}

// Exists reports whether a room row with this id is present.
func (r *RoomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", id).Count(&cnt)
	return cnt > 0, tx.Error
}

// mapRoomNumberError translates the Postgres unique violation on the
// room_number index into the sentinel, in case a concurrent writer beat
// the pre-check.
func mapRoomNumberError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_rooms_number" {
		return ErrRoomNumberTaken
	}
	return err
}
