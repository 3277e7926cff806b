// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes harvested records to the supported output sinks:
// a human-readable table, JSON, and CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Lyalpha/arxivscraper/pkg/types"
)

const dateFmt = "2006-01-02"

// csvHeader is the column set of the CSV sink. Order matters: downstream
// notebooks index these by position.
var csvHeader = []string{
	"id", "title", "categories", "created", "updated", "doi", "authors", "abstract", "url",
}

// FormatTable writes records as a human-readable table to w.
func FormatTable(records []types.Record, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records harvested.")
		return
	}

	fmt.Fprintf(w, "%-14s  %-60s  %-20s  %-10s  %s\n",
		"ID", "Title", "Authors", "Created", "Categories")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for _, r := range records {
		title := r.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		created := ""
		if !r.Created.IsZero() {
			created = r.Created.Format(dateFmt)
		}
		fmt.Fprintf(w, "%-14s  %-60s  %-20s  %-10s  %s\n",
			r.ID, title, formatAuthors(r.AuthorFullnames), created, strings.Join(r.Categories, " "))
	}

	fmt.Fprintf(w, "\n%d records\n", len(records))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// WriteCSV writes records to w with one row per record. Multi-valued
// fields are joined with "; " inside their column.
func WriteCSV(records []types.Record, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range records {
		updated := ""
		if !r.Updated.IsZero() {
			updated = r.Updated.Format(dateFmt)
		}
		created := ""
		if !r.Created.IsZero() {
			created = r.Created.Format(dateFmt)
		}
		row := []string{
			r.ID,
			r.Title,
			strings.Join(r.Categories, " "),
			created,
			updated,
			r.DOI,
			strings.Join(r.AuthorFullnames, "; "),
			r.Abstract,
			r.URL,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
