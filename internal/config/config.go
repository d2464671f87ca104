package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Режимы запуска сервера.
const (
	RunModeStandalone = "standalone" // обычный запуск с HTTP-листенером
	RunModeEmbedded   = "embedded"   // встраивание в хостинг-платформу, листенер не поднимаем
)

type Config struct {
	Port        int    `env:"PORT"`
	APIKey      string `env:"API_KEY"`
	DatabaseDSN string `env:"DATABASE_URL"`
	RunMode     string `env:"RUN_MODE"`

	// Address вычисляется из Port
	Address string `env:"-"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.IntVar(&cfg.Port, "p", cfg.Port, "порт HTTP-сервера")
	flag.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "статический API-ключ для заголовка x-api-key")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.RunMode, "mode", cfg.RunMode, "режим запуска: standalone | embedded")

	flag.Parse()

	// Defaults
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = 3000
	}
	if cfg.RunMode != RunModeStandalone && cfg.RunMode != RunModeEmbedded {
		cfg.RunMode = RunModeStandalone
	}

	cfg.Address = fmt.Sprintf(":%d", cfg.Port)

	return cfg
}
