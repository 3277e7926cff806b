// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lyalpha/arxivscraper/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndCount(t *testing.T) {
	s := openTestStore(t)

	records := []types.Record{
		{
			ID:              "1801.00001",
			Title:           "deep learning for spin glasses",
			Categories:      []string{"cond-mat.stat-mech"},
			Created:         time.Date(2017, 12, 29, 0, 0, 0, 0, time.UTC),
			Abstract:        "we study deep learning methods.",
			Authors:         []string{"curie"},
			AuthorFullnames: []string{"marie curie"},
			URL:             "https://arxiv.org/abs/1801.00001",
		},
		{
			ID:      "1801.00002",
			Title:   "a study of y",
			Created: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, s.Save(records))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSave_UpsertsByID(t *testing.T) {
	s := openTestStore(t)

	rec := types.Record{ID: "1801.00001", Title: "first title"}
	require.NoError(t, s.Save([]types.Record{rec}))

	rec.Title = "second title"
	require.NoError(t, s.Save([]types.Record{rec}))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var title string
	require.NoError(t, s.db.QueryRow(`SELECT title FROM records WHERE id = ?`, "1801.00001").Scan(&title))
	assert.Equal(t, "second title", title)
}

func TestSave_EmptyIsNoop(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Save(nil))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_ReopenExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save([]types.Record{{ID: "1801.00001"}}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	n, err := s2.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
