// Package migrations embeds the SQL schema for each supported database and applies it.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// FS contains the embedded SQL migration files, one directory per dialect.
//
//go:embed mysql/*.sql sqlite/*.sql
var FS embed.FS

// Dialect names a schema directory and the goose dialect used to apply it.
type Dialect string

const (
	DialectMySQL  Dialect = "mysql"
	DialectSQLite Dialect = "sqlite"
)

func (d Dialect) gooseDialect() (string, error) {
	switch d {
	case DialectMySQL:
		return "mysql", nil
	case DialectSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unknown dialect %q", d)
	}
}

// Run applies all pending migrations for dialect to db.
func Run(db *sql.DB, dialect Dialect) error {
	gooseDialect, err := dialect.gooseDialect()
	if err != nil {
		return err
	}

	goose.SetBaseFS(FS)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, string(dialect)); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
