// @title           Bookmarks API
// @version         1.0
// @description     Bookmarks backend.
// @description     Provides JWT authentication, user profile and bookmark CRUD scoped to the owner.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа серверного приложения bookmarks.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера (по умолчанию ./configs/server.yaml, флаг -config);
//   - инициализацию хранилища (PostgreSQL с миграциями или SQLite) и управление его жизненным циклом;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - запуск HTTP или HTTPS (tls.enabled) сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/api"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/config"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-bookmarks/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/repository"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/repository/sqlite"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-bookmarks/swagger/docs"
)

func main() {
	configPath := flag.String("config", "./configs/server.yaml", "path to server config")
	flag.Parse()

	// до чтения конфига пишем в дефолтный файл
	sugar := logger.NewHTTPLogger().Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		sugar.Fatal(err)
	}

	httpLogger, err := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		Stdout:     cfg.Log.Stdout,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		sugar.Fatal(err)
	}
	defer httpLogger.Sync()
	sugar = httpLogger.Sugar()

	// создаём контекст с отменой по сигналам
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// подключаем базу данных и складываем репы
	repos, closer, err := openStore(ctx, cfg, httpLogger)
	if err != nil {
		sugar.Fatal(err)
	}
	// делаем отложенное закрытие бд
	defer closer.Close()

	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// создаём jwt
	verifier := middleware.NewJWTVerifier(svc.Auth.JWT())
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, verifier)
	// создаём роутер
	router := h.NewRouter(handler, h.Options{
		Docs:         cfg.Docs.Enabled,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})

	//создаём сервер
	addr := cfg.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s (tls=%t, store=%s)", addr, cfg.TLS.Enabled, cfg.DB.Driver)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		// ctx уже отменён, поэтому таймаут считаем от нового контекста
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

// openStore открывает хранилище по db.driver и собирает репозитории.
func openStore(ctx context.Context, cfg *config.Config, log *logger.HTTPLogger) (service.Repositories, io.Closer, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err := config.OpenSQLite(ctx, cfg.DB)
		if err != nil {
			return service.Repositories{}, nil, err
		}
		if err := sqlite.CreateSchema(ctx, db); err != nil {
			db.Close()
			return service.Repositories{}, nil, err
		}
		return service.Repositories{
			Users:     sqlite.NewUsersRepository(db),
			Bookmarks: sqlite.NewBookmarksRepository(db),
			Health:    sqlite.NewHealthRepository(db),
		}, db, nil
	default:
		db, err := config.OpenPostgres(ctx, cfg.DB, cfg.Migrations, log)
		if err != nil {
			return service.Repositories{}, nil, err
		}
		return service.Repositories{
			Users:     repository.NewUsersRepository(db),
			Bookmarks: repository.NewBookmarksRepository(db),
			Health:    repository.NewHealthRepository(db),
		}, db, nil
	}
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
