package item

import (
	"catalog/domain"
	"context"
)

// Repository is the data-access contract over the items table.
// FindByID returns sql.ErrNoRows when the id does not exist.
type Repository interface {
	Close() error
	ListAll(ctx context.Context) ([]domain.Item, error)
	FindByID(ctx context.Context, id int64) (domain.Item, error)
	FindByNameContains(ctx context.Context, name string) ([]domain.Item, error)
	FindActive(ctx context.Context) ([]domain.Item, error)
	FindActiveOrLegacy(ctx context.Context) ([]domain.Item, error)
	FindByNameContainsAndActive(ctx context.Context, name string) ([]domain.Item, error)
	SearchText(ctx context.Context, term string) ([]domain.Item, error)
	CountActive(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.Item, error)
	Save(ctx context.Context, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, item domain.Item) error
}
