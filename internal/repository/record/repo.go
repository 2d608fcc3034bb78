// Package record persists generic record-store rows in Valkey/Redis hashes or SQLite.
package record

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/studentnest/internal/domain"
	domrec "github.com/kailas-cloud/studentnest/internal/domain/record"
)

// store is the consumer interface for record hashes (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/record.Repository over hashes.
type Repo struct {
	store  store
	prefix string
}

// New creates a hash-backed record repository. prefix namespaces every key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Insert stores a record as one hash. Existing ids are rejected.
func (r *Repo) Insert(ctx context.Context, rec domrec.Record) error {
	key := recordKey(r.prefix, rec.Collection(), rec.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	if exists {
		return fmt.Errorf("record %s: %w", rec.ID(), domain.ErrDuplicateRecord)
	}

	if err := r.store.HSet(ctx, key, toHash(rec)); err != nil {
		return fmt.Errorf("hset %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	return nil
}

// SelectAll returns every record of a collection in insertion order.
func (r *Repo) SelectAll(ctx context.Context, collection string) ([]domrec.Record, error) {
	keys, err := r.store.Scan(ctx, collectionPattern(r.prefix, collection))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w: %w", collection, domain.ErrStoreUnavailable, err)
	}
	if len(keys) == 0 {
		return []domrec.Record{}, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w: %w", collection, domain.ErrStoreUnavailable, err)
	}

	out := make([]domrec.Record, 0, len(hashes))
	for i, h := range hashes {
		if len(h) == 0 {
			continue // deleted between SCAN and HGETALL
		}
		rec, err := fromHash(collection, keys[i], h)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	// SCAN order is arbitrary.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt() != out[j].CreatedAt() {
			return out[i].CreatedAt() < out[j].CreatedAt()
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}
