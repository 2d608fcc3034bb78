package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/studentnest/internal/domain"
	domrec "github.com/kailas-cloud/studentnest/internal/domain/record"
)

// --- Mocks ---

type mockRepo struct {
	inserted  []domrec.Record
	selected  []domrec.Record
	insertErr error
	selectErr error
	gotColl   string
}

func (m *mockRepo) Insert(_ context.Context, rec domrec.Record) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, rec)
	return nil
}

func (m *mockRepo) SelectAll(_ context.Context, collection string) ([]domrec.Record, error) {
	m.gotColl = collection
	return m.selected, m.selectErr
}

// --- Tests ---

func TestInsert_Success(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	rec, err := svc.Insert(context.Background(), domrec.Housing, map[string]string{"title": "Studio near campus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uuid.Parse(rec.ID()); err != nil {
		t.Errorf("id %q is not a uuid: %v", rec.ID(), err)
	}
	if rec.CreatedAt() != 1700000000000 {
		t.Errorf("CreatedAt() = %d", rec.CreatedAt())
	}
	if len(repo.inserted) != 1 || repo.inserted[0].ID() != rec.ID() {
		t.Errorf("repo did not receive the record: %+v", repo.inserted)
	}
}

func TestInsert_Validation(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		fields     map[string]string
		want       error
	}{
		{"no fields", "housing", nil, domain.ErrInvalidRecord},
		{"blank value", "housing", map[string]string{"title": "  "}, domain.ErrInvalidRecord},
		{"blank key", "housing", map[string]string{" ": "x"}, domain.ErrInvalidRecord},
		{"bad collection", "house hold", map[string]string{"title": "x"}, domain.ErrInvalidCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			_, err := New(repo).Insert(context.Background(), tt.collection, tt.fields)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(repo.inserted) != 0 {
				t.Error("invalid record reached the repository")
			}
		})
	}
}

func TestInsert_RepoError(t *testing.T) {
	repo := &mockRepo{insertErr: domain.ErrStoreUnavailable}
	_, err := New(repo).Insert(context.Background(), "housing", map[string]string{"a": "b"})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestNilRepo_NotImplemented(t *testing.T) {
	svc := New(nil)

	if _, err := svc.Insert(context.Background(), "housing", map[string]string{"a": "b"}); !errors.Is(err, domain.ErrNotImplemented) {
		t.Errorf("Insert: expected ErrNotImplemented, got %v", err)
	}
	if _, err := svc.SelectAll(context.Background(), "housing", nil); !errors.Is(err, domain.ErrNotImplemented) {
		t.Errorf("SelectAll: expected ErrNotImplemented, got %v", err)
	}
}

func TestSelectAll_Ordered(t *testing.T) {
	repo := &mockRepo{selected: []domrec.Record{
		domrec.Reconstruct("a", "marketplace", map[string]string{"price": "30"}, 3),
		domrec.Reconstruct("b", "marketplace", map[string]string{"price": "10"}, 1),
		domrec.Reconstruct("c", "marketplace", map[string]string{"title": "lamp"}, 2),
	}}
	svc := New(repo)

	recs, err := svc.SelectAll(context.Background(), "marketplace", &domrec.Order{Field: "price"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotColl != "marketplace" {
		t.Errorf("collection = %q", repo.gotColl)
	}
	got := []string{recs[0].ID(), recs[1].ID(), recs[2].ID()}
	if got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Errorf("order = %v, want [b a c]", got)
	}

	recs, _ = svc.SelectAll(context.Background(), "marketplace", &domrec.Order{Field: domrec.CreatedAtField, Desc: true})
	if recs[0].ID() != "a" || recs[2].ID() != "b" {
		t.Errorf("created_at desc order wrong: %s %s %s", recs[0].ID(), recs[1].ID(), recs[2].ID())
	}
}

func TestSelectAll_InvalidCollection(t *testing.T) {
	_, err := New(&mockRepo{}).SelectAll(context.Background(), "", nil)
	if !errors.Is(err, domain.ErrInvalidCollection) {
		t.Fatalf("expected ErrInvalidCollection, got %v", err)
	}
}

func TestSelectAll_RepoError(t *testing.T) {
	_, err := New(&mockRepo{selectErr: errors.New("boom")}).SelectAll(context.Background(), "housing", nil)
	if err == nil {
		t.Fatal("expected error")
	}
}
