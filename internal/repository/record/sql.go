package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kailas-cloud/studentnest/internal/db"
	"github.com/kailas-cloud/studentnest/internal/domain"
	domrec "github.com/kailas-cloud/studentnest/internal/domain/record"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id          TEXT NOT NULL,
	collection  TEXT NOT NULL,
	fields      TEXT NOT NULL,
	created_at  INTEGER NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_records_collection ON records(collection, created_at);
`

// SQLRepo implements usecase/record.Repository over SQLite.
// Fields are stored as a JSON object.
type SQLRepo struct {
	db *sql.DB
}

// NewSQL migrates the schema and returns the repository.
func NewSQL(ctx context.Context, conn *sql.DB) (*SQLRepo, error) {
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return nil, &db.Error{Op: db.OpMigrate, Err: err}
	}
	return &SQLRepo{db: conn}, nil
}

// Insert stores one row. Existing ids are rejected.
func (r *SQLRepo) Insert(ctx context.Context, rec domrec.Record) error {
	data, err := json.Marshal(rec.Fields())
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO records (id, collection, fields, created_at) VALUES (?, ?, ?, ?)`,
		rec.ID(), rec.Collection(), string(data), rec.CreatedAt(),
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("record %s: %w", rec.ID(), domain.ErrDuplicateRecord)
		}
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, &db.Error{Op: db.OpInsert, Err: err})
	}
	return nil
}

// SelectAll returns every row of a collection in insertion order.
func (r *SQLRepo) SelectAll(ctx context.Context, collection string) ([]domrec.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, fields, created_at FROM records WHERE collection = ? ORDER BY created_at, rowid`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, &db.Error{Op: db.OpSelect, Err: err})
	}
	defer rows.Close()

	out := []domrec.Record{}
	for rows.Next() {
		var (
			id, raw   string
			createdAt int64
		)
		if err := rows.Scan(&id, &raw, &createdAt); err != nil {
			return nil, &db.Error{Op: db.OpSelect, Err: err}
		}
		var fields map[string]string
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, fmt.Errorf("decode fields of %s: %w", id, err)
		}
		out = append(out, domrec.Reconstruct(id, collection, fields, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	return out, nil
}

func isConstraintErr(err error) bool {
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		// SQLITE_CONSTRAINT and its extended codes share the low byte 19.
		return coded.Code()&0xff == 19
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
