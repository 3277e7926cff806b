// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package oai

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lyalpha/arxivscraper/pkg/types"
)

const dateFmt = "2006-01-02"

// OAI-PMH envelope XML structures. Only the ListRecords branch of the
// protocol is modeled; the metadata block is the arXiv native format
// (metadataPrefix=arXiv).
type envelope struct {
	Error       *envelopeError `xml:"error"`
	ListRecords *listRecords   `xml:"ListRecords"`
}

type envelopeError struct {
	Code    string `xml:"code,attr"`
	Message string `xml:",chardata"`
}

type listRecords struct {
	Records         []recordXML      `xml:"record"`
	ResumptionToken *resumptionToken `xml:"resumptionToken"`
}

type resumptionToken struct {
	Value string `xml:",chardata"`
	// CompleteListSize is the server's advisory total for the full list.
	CompleteListSize string `xml:"completeListSize,attr"`
}

type recordXML struct {
	Header   headerXML   `xml:"header"`
	Metadata metadataXML `xml:"metadata"`
}

type headerXML struct {
	Identifier string `xml:"identifier"`
	Status     string `xml:"status,attr"`
}

type metadataXML struct {
	ArXiv arxivMetaXML `xml:"arXiv"`
}

type arxivMetaXML struct {
	ID         string      `xml:"id"`
	Created    string      `xml:"created"`
	Updated    string      `xml:"updated"`
	Authors    []authorXML `xml:"authors>author"`
	Title      string      `xml:"title"`
	Categories string      `xml:"categories"`
	DOI        string      `xml:"doi"`
	Abstract   string      `xml:"abstract"`
}

type authorXML struct {
	Keyname     string   `xml:"keyname"`
	Forenames   string   `xml:"forenames"`
	Affiliation []string `xml:"affiliation"`
}

// deleted reports whether the record header carries the deleted status.
// Deleted records have no metadata and are skipped during harvesting.
func (r recordXML) deleted() bool {
	return r.Header.Status == "deleted"
}

// cleanText normalizes a metadata text field: whitespace runs (including
// the newline-plus-indentation the exporter emits inside long fields)
// collapse to single spaces, and the result is lowercased.
func cleanText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// parseRecord converts one ListRecords entry into a normalized Record. A
// returned error marks the entry as unusable; the caller skips it and the
// harvest continues.
func parseRecord(rx recordXML) (types.Record, error) {
	m := rx.Metadata.ArXiv

	id := strings.TrimSpace(m.ID)
	if id == "" {
		return types.Record{}, fmt.Errorf("entry %s: missing arXiv id", rx.Header.Identifier)
	}

	rec := types.Record{
		ID:         id,
		Title:      cleanText(m.Title),
		Abstract:   cleanText(m.Abstract),
		DOI:        strings.TrimSpace(m.DOI),
		Categories: strings.Fields(strings.ToLower(m.Categories)),
		URL:        "https://arxiv.org/abs/" + id,
	}

	if v := strings.TrimSpace(m.Created); v != "" {
		t, err := time.Parse(dateFmt, v)
		if err != nil {
			return types.Record{}, fmt.Errorf("entry %s: parsing created date: %w", id, err)
		}
		rec.Created = t
	}
	// A bad updated date is not worth losing the record over.
	if v := strings.TrimSpace(m.Updated); v != "" {
		if t, err := time.Parse(dateFmt, v); err == nil {
			rec.Updated = t
		}
	}

	for _, a := range m.Authors {
		keyname := cleanText(a.Keyname)
		rec.Authors = append(rec.Authors, keyname)
		rec.AuthorFullnames = append(rec.AuthorFullnames, strings.TrimSpace(cleanText(a.Forenames)+" "+keyname))
		for _, aff := range a.Affiliation {
			rec.Affiliations = append(rec.Affiliations, cleanText(aff))
		}
	}

	return rec, nil
}
