package faq

import (
	"fmt"
	"strings"
)

// Record is a knowledge record (immutable value object).
// Tags keep their insertion order for display.
type Record struct {
	id       string
	question string
	answer   string
	category Category
	tags     []string
}

// New validates and creates a Record.
// ID, question and answer must be non-blank, category must be supported,
// tags must be non-blank and are stored lowercased.
func New(id, question, answer string, category Category, tags []string) (Record, error) {
	if strings.TrimSpace(id) == "" {
		return Record{}, fmt.Errorf("record id is required")
	}
	if strings.TrimSpace(question) == "" {
		return Record{}, fmt.Errorf("record %s: question is required", id)
	}
	if strings.TrimSpace(answer) == "" {
		return Record{}, fmt.Errorf("record %s: answer is required", id)
	}
	if !category.IsValid() {
		return Record{}, fmt.Errorf("record %s: invalid category %q", id, category)
	}

	normalized := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			return Record{}, fmt.Errorf("record %s: empty tag", id)
		}
		normalized = append(normalized, t)
	}

	return Record{
		id:       id,
		question: question,
		answer:   answer,
		category: category,
		tags:     normalized,
	}, nil
}

// Reconstruct creates a Record without validation.
func Reconstruct(id, question, answer string, category Category, tags []string) Record {
	return Record{id: id, question: question, answer: answer, category: category, tags: tags}
}

// ID returns the record identifier.
func (r Record) ID() string { return r.id }

// Question returns the canonical question phrasing.
func (r Record) Question() string { return r.question }

// Answer returns the answer text.
func (r Record) Answer() string { return r.answer }

// Category returns the browse category.
func (r Record) Category() Category { return r.category }

// Tags returns a copy of the keyword tags.
func (r Record) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}
