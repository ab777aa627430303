package clients

import (
	"context"

	"hotel/internal/domain"
)

// ClientRepository defines the store operations the service consumes.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	HasDuplicate(ctx context.Context, c *domain.Client, excludeID int64) (bool, error)
}
