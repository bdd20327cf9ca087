package db

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// ParseURL splits DATABASE_URL into a dialect and the DSN its driver expects.
// postgres:// and postgresql:// URLs are passed through; sqlite://path,
// sqlite:path and file: URIs select SQLite.
func ParseURL(url string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return Postgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		return SQLite, strings.TrimPrefix(url, "sqlite://"), nil
	case strings.HasPrefix(url, "sqlite:"):
		return SQLite, strings.TrimPrefix(url, "sqlite:"), nil
	case strings.HasPrefix(url, "file:"):
		return SQLite, url, nil
	default:
		return "", "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", redact(url))
	}
}

func Open(url string, log *zap.Logger) (*gorm.DB, Dialect, error) {
	dialect, dsn, err := ParseURL(url)
	if err != nil {
		return nil, "", err
	}

	var dialector gorm.Dialector
	switch dialect {
	case Postgres:
		dialector = postgres.Open(dsn)
	case SQLite:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(log),
	})
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", dialect, err)
	}

	if dialect == SQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, "", err
		}
		// One writer at a time; also keeps :memory: databases on one connection.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, "", fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	return db, dialect, nil
}

func redact(url string) string {
	if i := strings.Index(url, "@"); i >= 0 {
		if j := strings.Index(url, "://"); j >= 0 && j < i {
			return url[:j+3] + "***" + url[i:]
		}
	}
	return url
}
