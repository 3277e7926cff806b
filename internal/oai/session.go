// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package oai drives the arXiv OAI-PMH ListRecords conversation: it issues
// the initial request for a category and date range, follows resumption
// tokens until the list is exhausted, parses each page's metadata into
// normalized records, and applies optional field filters.
package oai

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Lyalpha/arxivscraper/internal/httputil"
	"github.com/Lyalpha/arxivscraper/internal/taxonomy"
	"github.com/Lyalpha/arxivscraper/pkg/types"
)

// oaiBase is the arXiv OAI-PMH export endpoint. Declared as a var so tests
// can substitute an httptest server.
var oaiBase = "https://export.arxiv.org/oai2"

// metadataPrefix selects arXiv's native metadata format.
const metadataPrefix = "arXiv"

// HarvestError is a fatal harvest failure: network error, unexpected HTTP
// status, unparseable envelope, or an exhausted throttling retry budget.
type HarvestError struct {
	Op  string
	Err error
}

func (e *HarvestError) Error() string {
	return fmt.Sprintf("harvest: %s: %v", e.Op, e.Err)
}

func (e *HarvestError) Unwrap() error {
	return e.Err
}

// Options configures one Scrape call. A zero From or Until leaves the
// corresponding bound to the endpoint's own earliest/latest record date.
type Options struct {
	From    time.Time
	Until   time.Time
	Filters *FilterSpec
}

// Session drives a single ListRecords harvest. Records accumulate in
// memory and are handed to the caller when the harvest completes; nothing
// persists between Scrape calls.
type Session struct {
	Client *http.Client
	Cfg    types.HarvestConfig

	// w receives progress lines and per-record warnings.
	w io.Writer
}

// NewSession returns a Session writing progress output to w. A nil w
// discards it.
func NewSession(client *http.Client, cfg types.HarvestConfig, w io.Writer) *Session {
	if w == nil {
		w = io.Discard
	}
	return &Session{Client: client, Cfg: cfg, w: w}
}

// pageState is the pagination state machine. The resumption-token protocol
// is inherently sequential: the token for page N+1 only exists after page N
// has been parsed.
type pageState int

const (
	pageStart      pageState = iota // no request issued yet
	pageContinuing                  // resumption token in hand
	pageDone                        // token absent or empty: list exhausted
)

// Scrape harvests all records for the category within the date range,
// filtered per opts.Filters, in the order the endpoint returns them.
//
// Unknown categories fail with an error matching taxonomy.ErrUnknownCategory
// before any request is made, as does a from bound after the until bound.
// Fatal mid-harvest errors discard accumulated records unless Cfg.Partial is
// set; context cancellation always returns what was accumulated, alongside
// the context error.
func (s *Session) Scrape(ctx context.Context, category string, opts Options) ([]types.Record, error) {
	cat, err := taxonomy.Resolve(category)
	if err != nil {
		return nil, err
	}
	if !opts.From.IsZero() && !opts.Until.IsZero() && opts.From.After(opts.Until) {
		return nil, fmt.Errorf("invalid date range: from %s is after until %s",
			opts.From.Format(dateFmt), opts.Until.Format(dateFmt))
	}

	var (
		records []types.Record
		state   = pageStart
		token   string
		pages   int
	)

	for state != pageDone {
		lr, err := s.fetchPage(ctx, pageURL(cat, opts, state, token))
		if err != nil {
			if s.Cfg.Partial || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return records, err
			}
			return nil, err
		}
		pages++

		kept := 0
		for _, rx := range lr.Records {
			if rx.deleted() {
				continue
			}
			rec, err := parseRecord(rx)
			if err != nil {
				fmt.Fprintf(s.w, "warning: skipping record: %v\n", err)
				continue
			}
			if !opts.Filters.Match(rec) {
				continue
			}
			records = append(records, rec)
			kept++
		}
		fmt.Fprintf(s.w, "page %d: kept %d of %d records (%d so far)\n",
			pages, kept, len(lr.Records), len(records))

		tok := lr.ResumptionToken
		if tok == nil || strings.TrimSpace(tok.Value) == "" {
			state = pageDone
			continue
		}
		if pages == 1 && tok.CompleteListSize != "" {
			fmt.Fprintf(s.w, "endpoint reports %s matching records\n", tok.CompleteListSize)
		}
		token = strings.TrimSpace(tok.Value)
		state = pageContinuing
	}

	fmt.Fprintf(s.w, "harvest complete: %d records in %d page(s)\n", len(records), pages)
	return records, nil
}

// pageURL builds the request URL for the current pagination state. Per
// protocol rules a resumption token excludes every other argument.
func pageURL(cat taxonomy.Category, opts Options, state pageState, token string) string {
	params := url.Values{"verb": {"ListRecords"}}
	if state == pageContinuing {
		params.Set("resumptionToken", token)
		return oaiBase + "?" + params.Encode()
	}
	params.Set("metadataPrefix", metadataPrefix)
	params.Set("set", cat.SetID)
	if !opts.From.IsZero() {
		params.Set("from", opts.From.Format(dateFmt))
	}
	if !opts.Until.IsZero() {
		params.Set("until", opts.Until.Format(dateFmt))
	}
	return oaiBase + "?" + params.Encode()
}

// fetchPage issues one ListRecords request and decodes the envelope.
// Throttling (HTTP 503/429, honoring Retry-After) is retried inside
// DoWithRetry without advancing pagination state; a response that is still
// throttled after the retry budget is fatal. A noRecordsMatch error from
// the endpoint is an empty result, not a failure.
func (s *Session) fetchPage(ctx context.Context, reqURL string) (*listRecords, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &HarvestError{Op: "creating request", Err: err}
	}
	req.Header.Set("User-Agent", s.Cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, s.Cfg.MaxRetries, s.Cfg.RetryWait)
	if err != nil {
		return nil, &HarvestError{Op: "requesting page", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusTooManyRequests:
		return nil, &HarvestError{Op: "requesting page",
			Err: fmt.Errorf("still throttled (HTTP %d) after retry budget", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return nil, &HarvestError{Op: "requesting page",
			Err: fmt.Errorf("unexpected HTTP %d", resp.StatusCode)}
	}

	var env envelope
	if err := xml.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &HarvestError{Op: "parsing envelope", Err: err}
	}

	if env.Error != nil {
		if env.Error.Code == "noRecordsMatch" {
			return &listRecords{}, nil
		}
		return nil, &HarvestError{Op: "endpoint error",
			Err: fmt.Errorf("%s: %s", env.Error.Code, strings.TrimSpace(env.Error.Message))}
	}
	if env.ListRecords == nil {
		return nil, &HarvestError{Op: "parsing envelope",
			Err: errors.New("response carries neither ListRecords nor error")}
	}
	return env.ListRecords, nil
}
