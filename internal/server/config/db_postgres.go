// Package config содержит инициализацию подключения к базе данных сервера.
//
// Для PostgreSQL пакет выполняет:
//   - открытие соединения (через драйвер pgx) и настройку пула;
//   - проверку доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/logger"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenPostgres открывает подключение к базе данных по DSN, настраивает пул,
// проверяет доступность и (если включено) применяет миграции.
//
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
func OpenPostgres(ctx context.Context, dbCfg DBConfig, migCfg MigrationsConfig, log *logger.HTTPLogger) (*sql.DB, error) {
	sugar := log.Sugar()

	db, err := sql.Open("pgx", dbCfg.DSN)
	if err != nil {
		sugar.Errorf("error to connect db: %v", err)
		return nil, err
	}

	if dbCfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(dbCfg.ConnMaxIdleTime)

	if err = db.PingContext(ctx); err != nil {
		sugar.Errorf("error check db connection: %v", err)
		db.Close()
		return nil, err
	}

	if !migCfg.Enabled {
		return db, nil
	}

	if err := runMigrations(db, migCfg.Path); err != nil {
		sugar.Errorf("error applying migrations: %v", err)
		db.Close()
		return nil, err
	}

	sugar.Info("migrations applied successfully")
	return db, nil
}

// runMigrations применяет миграции из каталога path.
//
// migrate.Close() не вызываем: он закрыл бы и переданный *sql.DB.
func runMigrations(db *sql.DB, path string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}

	// создаём миграции с выбранным драйвером
	m, err := migrate.NewWithDatabaseInstance(path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("creating migrations: %w", err)
	}

	// запускаем создание миграций
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
