package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"ItemKeeper/internal/config"
	"ItemKeeper/internal/handlers"
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"ItemKeeper/internal/service"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockItemRepo) Create(ctx context.Context, item *model.Item) error {
	return m.Called(ctx, item).Error(0)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

const testAPIKey = "test-secret"

// newTestRouter собирает полный роутер с реальным сервисом поверх мок-репозитория
func newTestRouter(t *testing.T) (http.Handler, *hMockItemRepo) {
	t.Helper()
	cfg := &config.Config{APIKey: testAPIKey}
	logger := zap.NewNop().Sugar()
	ir := &hMockItemRepo{}

	itemSvc := service.NewItemService(ir, logger)
	h := handlers.NewHandler(itemSvc, logger, cfg)
	return h.Router, ir
}
