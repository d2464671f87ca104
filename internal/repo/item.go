package repo

import (
	"context"
	"fmt"

	"ItemKeeper/internal/model"

	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
type ItemRepository interface {
	// ListAll возвращает все элементы по возрастанию id.
	ListAll(ctx context.Context) ([]model.Item, error)

	// Create вставляет одну запись; назначенный id записывается обратно в item.
	Create(ctx context.Context, item *model.Item) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}
