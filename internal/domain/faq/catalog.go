package faq

import (
	"fmt"

	"github.com/kailas-cloud/studentnest/internal/domain"
)

// Catalog is the fixed, ordered set of knowledge records loaded at startup.
// It is never mutated after construction and is safe for concurrent readers.
type Catalog struct {
	records []Record
	byID    map[string]int
}

// NewCatalog validates and creates a Catalog.
// Rejects an empty record list and duplicate identifiers.
func NewCatalog(records []Record) (Catalog, error) {
	if len(records) == 0 {
		return Catalog{}, domain.ErrEmptyCatalog
	}

	byID := make(map[string]int, len(records))
	for i, r := range records {
		if _, dup := byID[r.ID()]; dup {
			return Catalog{}, fmt.Errorf("%w: id %q", domain.ErrDuplicateRecord, r.ID())
		}
		byID[r.ID()] = i
	}

	owned := make([]Record, len(records))
	copy(owned, records)

	return Catalog{records: owned, byID: byID}, nil
}

// Records returns the records in catalog order.
func (c Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c Catalog) Len() int { return len(c.records) }


// At returns the record at catalog position i.
func (c Catalog) At(i int) Record { return c.records[i] }

// Get looks up a record by identifier.
func (c Catalog) Get(id string) (Record, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// Categories returns the distinct categories present, in first-seen order.
func (c Catalog) Categories() []Category {
	seen := make(map[Category]bool)
	var out []Category
	for _, r := range c.records {
		if !seen[r.Category()] {
			seen[r.Category()] = true
			out = append(out, r.Category())
		}
	}
	return out
}
