package repo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает подключение к Postgres и проверяет его пингом.
// Ошибка здесь фатальна для процесса: сервер без БД не стартует.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access underlying db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// одно соединение на процесс: конкурентные запросы сериализуются на драйвере
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
