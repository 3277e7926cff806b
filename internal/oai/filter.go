// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package oai

import (
	"strings"

	"github.com/Lyalpha/arxivscraper/pkg/types"
)

// FilterSpec restricts harvested records by case-insensitive substring
// matching. Every populated field must be matched by at least one of its
// terms for a record to pass; empty fields do not filter. A nil or empty
// FilterSpec retains every record.
type FilterSpec struct {
	// Categories terms match against the record's subject classes.
	Categories []string

	// Abstract terms match against the abstract text.
	Abstract []string

	// Author terms match against author names (keynames and full names).
	Author []string

	// Title terms match against the title.
	Title []string
}

// IsEmpty reports whether the spec contains no filter terms.
func (f *FilterSpec) IsEmpty() bool {
	return f == nil ||
		len(f.Categories) == 0 && len(f.Abstract) == 0 && len(f.Author) == 0 && len(f.Title) == 0
}

// Match reports whether the record passes every populated filter field.
func (f *FilterSpec) Match(r types.Record) bool {
	if f == nil {
		return true
	}
	return matchAny(f.Categories, strings.Join(r.Categories, " ")) &&
		matchAny(f.Abstract, r.Abstract) &&
		matchAny(f.Author, strings.Join(r.AuthorFullnames, "; ")) &&
		matchAny(f.Title, r.Title)
}

// matchAny reports whether any term is a case-insensitive substring of
// field. An empty term list matches unconditionally.
func matchAny(terms []string, field string) bool {
	if len(terms) == 0 {
		return true
	}
	field = strings.ToLower(field)
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" && strings.Contains(field, term) {
			return true
		}
	}
	return false
}
