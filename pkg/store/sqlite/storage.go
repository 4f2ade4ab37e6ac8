package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const reportsTableSchema = `
	CREATE TABLE IF NOT EXISTS audit_reports (
		id TEXT NOT NULL PRIMARY KEY,
		generated_at TIMESTAMP NOT NULL,
		summary TEXT NOT NULL,
		findings TEXT NOT NULL
	);
`

var bootQueries = []string{
	reportsTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to bootstrap sqlite schema: %w", err)
		}
	}

	return db, nil
}
