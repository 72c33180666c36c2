// Package sqldb implements the datasources interfaces on a SQL database. The same queries
// run against MySQL and SQLite; only the sqlbuilder flavor and the schema dialect differ.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/jbeshir/webtoon-feed/migrations"
)

const mysqlParamStr string = "?parseTime=true"

func ConnectMySQL(ctx context.Context, uri string) (*sql.DB, error) {
	db, err := sql.Open("mysql", uri+mysqlParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}

// ConnectSQLite opens the SQLite database at path and applies pending migrations.
func ConnectSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite DB: %w", err)
	}

	// SQLite serialises writers; one connection avoids SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting %q: %w", pragma, err)
		}
	}

	if err := migrations.Run(db, migrations.DialectSQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating SQLite DB: %w", err)
	}

	return db, nil
}
