package main

import (
	"net/http"

	"ItemKeeper/internal/config"
	"ItemKeeper/internal/handlers"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/repo"
	"ItemKeeper/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	// пустой ключ означал бы, что запрос без заголовка проходит аутентификацию
	if cfg.APIKey == "" {
		sugar.Fatalw("API_KEY must not be empty")
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	defer func() {
		if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	itemRepo := repo.NewItemRepository(gormDB)
	itemService := service.NewItemService(itemRepo, sugar)

	h := handlers.NewHandler(itemService, sugar, cfg)

	sugar.Infow("Config",
		"Address", cfg.Address,
		"RunMode", cfg.RunMode,
	)

	if cfg.RunMode == config.RunModeEmbedded {
		sugar.Infow("Embedded mode: skipping standalone listener")
		return
	}

	sugar.Infow(
		"Starting server",
		"addr", cfg.Address,
	)

	if err := http.ListenAndServe(cfg.Address, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
