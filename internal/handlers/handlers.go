package handlers

import (
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithRecover)
	r.Use(middleware.WithAPIKey(config.APIKey))

	itemHandler := NewItemHandler(itemService, logger, config)

	r.Get("/items", itemHandler.List)
	r.Post("/items", itemHandler.Create)

	return &Handler{Router: r}
}
