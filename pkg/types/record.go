// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxivscraper harvester.
package types

import "time"

// Record holds the normalized metadata for a single arXiv eprint as
// returned by the OAI-PMH ListRecords verb. Text fields are normalized to
// lowercase with newlines collapsed to spaces; list fields preserve the
// order of the source document. A Record is never mutated after parsing.
type Record struct {
	// ID is the bare arXiv identifier (e.g. "1801.00001").
	ID string `json:"id" yaml:"id"`

	// Title is the eprint title.
	Title string `json:"title" yaml:"title"`

	// Categories lists the arXiv subject classes, primary first
	// (e.g. "cond-mat.stat-mech").
	Categories []string `json:"categories" yaml:"categories"`

	// Created is the date of the first version of the eprint.
	Created time.Time `json:"created" yaml:"created"`

	// Updated is the date of the latest version, zero if never revised.
	Updated time.Time `json:"updated,omitempty" yaml:"updated,omitempty"`

	// Abstract is the eprint abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// DOI is the registered DOI, empty when none exists.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Authors lists author keynames (family names) in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// AuthorFullnames lists "forenames keyname" per author, aligned
	// with Authors.
	AuthorFullnames []string `json:"authors_fullnames" yaml:"authors_fullnames"`

	// Affiliations lists author affiliations when the source provides
	// them; empty otherwise.
	Affiliations []string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`

	// URL is the abstract page for the eprint.
	URL string `json:"url" yaml:"url"`
}
