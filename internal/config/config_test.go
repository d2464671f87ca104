package config

import (
	"flag"
	"os"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RUN_MODE", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Port != 3000 {
		t.Fatalf("Port default expected 3000, got %d", cfg.Port)
	}
	if cfg.Address != ":3000" {
		t.Fatalf("Address default expected ':3000', got %q", cfg.Address)
	}
	if cfg.RunMode != RunModeStandalone {
		t.Fatalf("RunMode default expected %q, got %q", RunModeStandalone, cfg.RunMode)
	}
	// пустой API_KEY конфиг не чинит — это проверяется при старте сервера
	if cfg.APIKey != "" {
		t.Fatalf("APIKey expected empty, got %q", cfg.APIKey)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8099")
	t.Setenv("API_KEY", "secret-123")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/items")
	t.Setenv("RUN_MODE", "embedded")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Port != 8099 || cfg.Address != ":8099" {
		t.Fatalf("Port/Address expected 8099/':8099', got %d/%q", cfg.Port, cfg.Address)
	}
	if cfg.APIKey != "secret-123" {
		t.Fatalf("APIKey expected from env, got %q", cfg.APIKey)
	}
	if cfg.DatabaseDSN != "postgres://u:p@localhost:5432/items" {
		t.Fatalf("DatabaseDSN expected from env, got %q", cfg.DatabaseDSN)
	}
	if cfg.RunMode != RunModeEmbedded {
		t.Fatalf("RunMode expected 'embedded', got %q", cfg.RunMode)
	}
}

func TestNewConfig_InvalidValuesFallback(t *testing.T) {
	// Невалидный порт и неизвестный режим должны откатиться на дефолты
	t.Setenv("PORT", "99999")
	t.Setenv("RUN_MODE", "serverless")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.Port != 3000 {
		t.Fatalf("invalid PORT must fallback to 3000, got %d", cfg.Port)
	}
	if cfg.RunMode != RunModeStandalone {
		t.Fatalf("unknown RUN_MODE must fallback to %q, got %q", RunModeStandalone, cfg.RunMode)
	}
}
