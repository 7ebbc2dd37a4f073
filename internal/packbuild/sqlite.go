package packbuild

import (
	"context"
	"database/sql"
	"encoding/json"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/hol-api/internal/errors"
)

const createDocuments = `CREATE TABLE IF NOT EXISTS documents (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	data TEXT NOT NULL
)`

func writeSQLite(ctx context.Context, base string, docs []*document) (string, error) {
	path := base + ".db"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, createDocuments); err != nil {
		return "", errors.Wrap(err, "failed to create documents table")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	// a rebuild replaces the previous contents
	if _, err := tx.ExecContext(ctx, `DELETE FROM documents`); err != nil {
		return "", errors.Wrap(err, "failed to clear documents")
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO documents (id, name, type, data) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", errors.Wrap(err, "failed to prepare insert")
	}
	defer func() { _ = stmt.Close() }()

	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return "", errors.Wrapf(err, "failed to marshal %s", doc.ID)
		}
		if _, err := stmt.ExecContext(ctx, doc.ID, doc.Name, string(doc.Type), string(data)); err != nil {
			return "", errors.Wrapf(err, "failed to insert %s", doc.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", errors.Wrap(err, "failed to commit pack")
	}
	return path, nil
}
