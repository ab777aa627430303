package repository

import (
	"context"

	"hotel/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	ID         int64   `gorm:"column:id;primaryKey"`
	Surname    string  `gorm:"column:surname"`
	Name       string  `gorm:"column:name"`
	Patronymic *string `gorm:"column:patronymic"`
	Phone      string  `gorm:"column:phone"`
	Passport   *string `gorm:"column:passport"`
	Email      *string `gorm:"column:email"`
	Comment    *string `gorm:"column:comment"`
}

func (clientModel) TableName() string { return "clients" }

func toDomainClient(m clientModel) *domain.Client {
	return &domain.Client{
		ID:         m.ID,
		Surname:    m.Surname,
		Name:       m.Name,
		Patronymic: deref(m.Patronymic),
		Phone:      m.Phone,
		Passport:   deref(m.Passport),
		Email:      deref(m.Email),
		Comment:    deref(m.Comment),
	}
}

func toClientModel(c *domain.Client) clientModel {
	return clientModel{
		ID:         c.ID,
		Surname:    c.Surname,
		Name:       c.Name,
		Patronymic: optional(c.Patronymic),
		Phone:      c.Phone,
		Passport:   optional(c.Passport),
		Email:      optional(c.Email),
		Comment:    optional(c.Comment),
	}
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var m clientModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	var models []clientModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Client, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainClient(m))
	}
	return out, nil
}

func (r *ClientRepository) GetPage(ctx context.Context, size, page int) ([]*domain.Client, error) {
	if page < 1 {
		page = 1
	}
	var models []clientModel
	tx := r.db.WithContext(ctx).
		Order("id").
		Limit(size).
		Offset((page - 1) * size).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Client, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainClient(m))
	}
	return out, nil
}

func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&clientModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) (bool, error) {
	m := toClientModel(c)
	tx := r.db.WithContext(ctx).Model(&clientModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"surname":    m.Surname,
		"name":       m.Name,
		"patronymic": m.Patronymic,
		"phone":      m.Phone,
		"passport":   m.Passport,
		"email":      m.Email,
		"comment":    m.Comment,
	})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&clientModel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// HasDuplicate scans existing rows for an identical field tuple.
// excludeID skips the row being edited.
func (r *ClientRepository) HasDuplicate(ctx context.Context, c *domain.Client, excludeID int64) (bool, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for _, existing := range all {
		if existing.ID != excludeID && existing.SameTuple(c) {
			return true, nil
		}
	}
	return false, nil
}

// Exists reports whether a client row with this id is present.
func (r *ClientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&clientModel{}).Where("id = ?", id).Count(&cnt)
	return cnt > 0, tx.Error
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}
