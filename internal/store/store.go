// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store archives harvested records into a SQLite file. It is a
// write-side sink for a single run: the harvester never reads it back.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Lyalpha/arxivscraper/pkg/types"
)

const dateFmt = "2006-01-02"

// Store manages the archive SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		title TEXT,
		categories TEXT,
		created TEXT,
		updated TEXT,
		abstract TEXT,
		doi TEXT,
		authors TEXT,
		authors_fullnames TEXT,
		affiliation TEXT,
		url TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save upserts records into the archive inside one transaction. Re-saving
// the same arXiv id overwrites the previous row.
func (s *Store) Save(records []types.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO records
		(id, title, categories, created, updated, abstract, doi, authors, authors_fullnames, affiliation, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		created := ""
		if !r.Created.IsZero() {
			created = r.Created.Format(dateFmt)
		}
		updated := ""
		if !r.Updated.IsZero() {
			updated = r.Updated.Format(dateFmt)
		}
		_, err := stmt.Exec(
			r.ID,
			r.Title,
			strings.Join(r.Categories, " "),
			created,
			updated,
			r.Abstract,
			r.DOI,
			strings.Join(r.Authors, "; "),
			strings.Join(r.AuthorFullnames, "; "),
			strings.Join(r.Affiliations, "; "),
			r.URL,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting record %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Count returns the number of archived records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT count(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}
