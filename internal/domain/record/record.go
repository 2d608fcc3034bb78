package record

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kailas-cloud/studentnest/internal/domain"
)

var collectionRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Well-known collections used by the portal screens.
const (
	Housing       = "housing"
	Marketplace   = "marketplace"
	Opportunities = "opportunities"
)

// Record is a row in a named record-store collection (immutable value object).
type Record struct {
	id         string
	collection string
	fields     map[string]string
	createdAt  int64
}

// ValidateCollection checks a collection name: ^[a-zA-Z0-9_-]+$, 1-64 chars.
func ValidateCollection(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidCollection)
	}
	if len(name) > 64 {
		return fmt.Errorf("%w: name too long (max 64)", domain.ErrInvalidCollection)
	}
	if !collectionRegex.MatchString(name) {
		return fmt.Errorf("%w: name must be alphanumeric with underscores and hyphens", domain.ErrInvalidCollection)
	}
	return nil
}

// ValidateFields enforces the only record rule: at least one field, no blank keys or values.
func ValidateFields(fields map[string]string) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: at least one field is required", domain.ErrInvalidRecord)
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			return domain.NewFieldError(k, "has a blank name")
		}
		if strings.TrimSpace(v) == "" {
			return domain.NewFieldError(k, "is empty")
		}
	}
	return nil
}

// New validates and creates a Record.
func New(id, collection string, fields map[string]string, createdAt int64) (Record, error) {
	if id == "" {
		return Record{}, fmt.Errorf("%w: id is required", domain.ErrInvalidRecord)
	}
	if err := ValidateCollection(collection); err != nil {
		return Record{}, err
	}
	if err := ValidateFields(fields); err != nil {
		return Record{}, err
	}
	return Reconstruct(id, collection, fields, createdAt), nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(id, collection string, fields map[string]string, createdAt int64) Record {
	owned := make(map[string]string, len(fields))
	for k, v := range fields {
		owned[k] = v
	}
	return Record{id: id, collection: collection, fields: owned, createdAt: createdAt}
}

// ID returns the record identifier.
func (r Record) ID() string { return r.id }

// Collection returns the owning collection name.
func (r Record) Collection() string { return r.collection }

// Fields returns a copy of the record fields.
func (r Record) Fields() map[string]string {
	out := make(map[string]string, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

// Field returns a single field value.
func (r Record) Field(name string) (string, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// CreatedAt returns the insertion timestamp (unix millis).
func (r Record) CreatedAt() int64 { return r.createdAt }
