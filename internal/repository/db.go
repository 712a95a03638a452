package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
)

// schema creates the audit table on first start.
const schema = `
	CREATE TABLE IF NOT EXISTS generation_log (
		id         CHAR(36)    NOT NULL PRIMARY KEY,
		length     INT         NOT NULL,
		count      INT         NOT NULL,
		categories VARCHAR(64) NOT NULL,
		created_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_generation_log_created_at (created_at)
	)`

// NewDB opens a MySQL connection pool for the audit log and makes sure the
// table exists. A failed ping is returned so callers can run without the log.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	dsn, err := normalizeDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("audit log database ready")
	return db, nil
}

// normalizeDSN forces parseTime so created_at scans into time.Time.
func normalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}
