// Package browse implements the catalog browse mode: plain filtering without scoring.
package browse

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/studentnest/internal/domain"
	"github.com/kailas-cloud/studentnest/internal/domain/faq"
)

// AllCategories disables the category filter.
const AllCategories = "all"

// Service browses the startup catalog.
type Service struct {
	catalog faq.Catalog
}

// New creates a browse service.
func New(catalog faq.Catalog) *Service {
	return &Service{catalog: catalog}
}

// Filter returns records in catalog order whose question, answer or any tag
// contains term (case-insensitive) and whose category matches.
// An empty term matches everything; "" or "all" disables the category filter.
func (s *Service) Filter(term, category string) []faq.Record {
	term = strings.ToLower(strings.TrimSpace(term))
	category = strings.ToLower(strings.TrimSpace(category))
	anyCategory := category == "" || category == AllCategories

	var out []faq.Record
	for _, r := range s.catalog.Records() {
		if !anyCategory && string(r.Category()) != category {
			continue
		}
		if term != "" && !matches(r, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Get returns one record by id.
func (s *Service) Get(id string) (faq.Record, error) {
	r, ok := s.catalog.Get(id)
	if !ok {
		return faq.Record{}, fmt.Errorf("faq %q: %w", id, domain.ErrNotFound)
	}
	return r, nil
}

// Categories lists the categories present in the catalog.
func (s *Service) Categories() []faq.Category {
	return s.catalog.Categories()
}

func matches(r faq.Record, term string) bool {
	if strings.Contains(strings.ToLower(r.Question()), term) ||
		strings.Contains(strings.ToLower(r.Answer()), term) {
		return true
	}
	for _, tag := range r.Tags() {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
