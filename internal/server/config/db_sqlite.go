package config

import (
	"context"
	"database/sql"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// sqlitePragmas выставляются каждому соединению через DSN.
// busy_timeout заставляет писателя ждать блокировку вместо SQLITE_BUSY.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// OpenSQLite открывает SQLite базу через bun.
//
// Используется для локальной разработки и тестов, например dsn
// "file:bookmarks.db" или ":memory:". Прагмы foreign_keys и busy_timeout
// добавляются в DSN, для файловой базы ещё и journal_mode(WAL).
//
// SQLite допускает одного писателя, поэтому пул всегда из одного соединения:
// запросы ждут своей очереди в database/sql, а не падают с SQLITE_BUSY.
// Для in-memory базы это ещё и единственный способ видеть одну и ту же базу.
func OpenSQLite(ctx context.Context, dbCfg DBConfig) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, sqliteDSN(dbCfg.DSN))
	if err != nil {
		return nil, err
	}

	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)
	sqldb.SetConnMaxIdleTime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// sqliteDSN дописывает к dsn недостающие прагмы.
func sqliteDSN(dsn string) string {
	pragmas := sqlitePragmas
	if !isMemoryDSN(dsn) {
		pragmas = append(pragmas[:len(pragmas):len(pragmas)], "journal_mode(WAL)")
	}

	var b strings.Builder
	b.WriteString(dsn)
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	for _, p := range pragmas {
		name := p[:strings.IndexByte(p, '(')]
		if strings.Contains(dsn, "_pragma="+name) {
			continue
		}
		b.WriteString(sep + "_pragma=" + p)
		sep = "&"
	}
	return b.String()
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(dsn, ":memory:?") ||
		strings.HasPrefix(dsn, "file::memory:") || strings.Contains(dsn, "mode=memory")
}
