package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/studentnest/internal/domain"
	domrec "github.com/kailas-cloud/studentnest/internal/domain/record"
)

// Service inserts and lists records of named collections.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// New creates a record service. A nil repo makes every call return ErrNotImplemented.
func New(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Insert validates fields and stores a new record with a generated id.
func (s *Service) Insert(ctx context.Context, collection string, fields map[string]string) (domrec.Record, error) {
	if s.repo == nil {
		return domrec.Record{}, fmt.Errorf("record store: %w", domain.ErrNotImplemented)
	}

	rec, err := domrec.New(s.newID(), collection, fields, s.now().UnixMilli())
	if err != nil {
		return domrec.Record{}, err
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		return domrec.Record{}, fmt.Errorf("insert record: %w", err)
	}
	return rec, nil
}

// SelectAll lists every record of a collection, optionally ordered.
func (s *Service) SelectAll(ctx context.Context, collection string, order *domrec.Order) ([]domrec.Record, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("record store: %w", domain.ErrNotImplemented)
	}
	if err := domrec.ValidateCollection(collection); err != nil {
		return nil, err
	}

	recs, err := s.repo.SelectAll(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}

	domrec.Sort(recs, order)
	return recs, nil
}
