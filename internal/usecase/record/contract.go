package record

import (
	"context"

	domrec "github.com/kailas-cloud/studentnest/internal/domain/record"
)

// Repository defines the storage contract of the generic record store.
type Repository interface {
	Insert(ctx context.Context, rec domrec.Record) error
	SelectAll(ctx context.Context, collection string) ([]domrec.Record, error)
}
