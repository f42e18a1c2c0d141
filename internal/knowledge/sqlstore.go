package knowledge

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/SYLESH-1125/SIH/internal/config"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS knowledge_entries (
	category TEXT NOT NULL,
	item     TEXT NOT NULL,
	lang     TEXT NOT NULL,
	content  TEXT NOT NULL,
	PRIMARY KEY (category, item, lang)
)`

// OpenDB opens a database handle for the configured driver.
func OpenDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Driver {
	case "sqlite":
		db, err = sql.Open("sqlite3", cfg.SQLite.Path)
	case "postgres":
		db, err = sql.Open("postgres", cfg.Postgres.DSN)
		if err == nil {
			db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
			db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
			db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the knowledge_entries table if it does not exist.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertEntries writes entries to the database, replacing existing rows.
// Used by the CLI import command. The driver selects placeholder and
// upsert syntax.
func InsertEntries(db *sql.DB, driver string, entries []Entry) (int, error) {
	insertSQL := `INSERT OR REPLACE INTO knowledge_entries (category, item, lang, content) VALUES (?, ?, ?, ?)`
	if driver == "postgres" {
		insertSQL = `INSERT INTO knowledge_entries (category, item, lang, content) VALUES ($1, $2, $3, $4)
			ON CONFLICT (category, item, lang) DO UPDATE SET content = EXCLUDED.content`
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, e := range entries {
		for lang, content := range e.Translations {
			if _, err := stmt.Exec(e.Category, e.Item, lang, content); err != nil {
				return count, fmt.Errorf("insert %s/%s/%s: %w", e.Category, e.Item, lang, err)
			}
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return count, fmt.Errorf("commit transaction: %w", err)
	}
	return count, nil
}

func loadSQL(cfg config.DatabaseConfig) (rawKB, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT category, item, lang, content FROM knowledge_entries ORDER BY category, item, lang`)
	if err != nil {
		return nil, fmt.Errorf("query knowledge entries: %w", err)
	}
	defer rows.Close()

	raw := make(rawKB)
	for rows.Next() {
		var category, item, lang, content string
		if err := rows.Scan(&category, &item, &lang, &content); err != nil {
			return nil, fmt.Errorf("scan knowledge row: %w", err)
		}
		if raw[category] == nil {
			raw[category] = make(map[string]map[string]string)
		}
		if raw[category][item] == nil {
			raw[category][item] = make(map[string]string)
		}
		raw[category][item][lang] = content
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate knowledge rows: %w", err)
	}

	return raw, validateRaw(raw)
}
