package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lyalpha/arxivscraper/internal/export"
	"github.com/Lyalpha/arxivscraper/internal/oai"
	"github.com/Lyalpha/arxivscraper/internal/store"
	"github.com/Lyalpha/arxivscraper/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultWait      = 30 * time.Second
	defaultRetries   = 5
	defaultUserAgent = "arxivscraper/0.1"
	dateFmt          = "2006-01-02"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest <category>",
	Short: "Harvest metadata records for a category and date range",
	Long: `Harvest drives the OAI-PMH ListRecords conversation for one arXiv
category (e.g. "cond-mat" or "stat.ML"), following resumption tokens until
the list is exhausted. Omitted date bounds default to the endpoint's own
earliest/latest record dates.

Filter flags take comma-separated terms; a record is kept when every
populated filter field has at least one case-insensitive substring match.`,
	Args: cobra.ExactArgs(1),
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().String("from", "", "start of the date range (YYYY-MM-DD)")
	harvestCmd.Flags().String("until", "", "end of the date range (YYYY-MM-DD)")
	harvestCmd.Flags().String("filter-category", "", "category filter terms (comma-separated)")
	harvestCmd.Flags().String("filter-abstract", "", "abstract filter terms (comma-separated)")
	harvestCmd.Flags().String("filter-author", "", "author filter terms (comma-separated)")
	harvestCmd.Flags().String("filter-title", "", "title filter terms (comma-separated)")
	harvestCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	harvestCmd.Flags().Duration("wait", 0, "fallback wait between throttled retries (default 30s)")
	harvestCmd.Flags().Int("max-retries", 0, "throttling retries per page (default 5)")
	harvestCmd.Flags().Bool("partial", false, "keep records accumulated before a fatal error")
	harvestCmd.Flags().Bool("json", false, "output records as JSON")
	harvestCmd.Flags().String("csv", "", "write records to a CSV file")
	harvestCmd.Flags().String("save", "", "save the run to a YAML harvest file")
	harvestCmd.Flags().String("db", "", "archive records into a SQLite file")

	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	category := args[0]

	opts := oai.Options{}
	var err error
	fromStr, _ := cmd.Flags().GetString("from")
	if opts.From, err = parseDate(fromStr); err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	untilStr, _ := cmd.Flags().GetString("until")
	if opts.Until, err = parseDate(untilStr); err != nil {
		return fmt.Errorf("invalid --until: %w", err)
	}

	filters := &oai.FilterSpec{
		Categories: splitTerms(flagString(cmd, "filter-category")),
		Abstract:   splitTerms(flagString(cmd, "filter-abstract")),
		Author:     splitTerms(flagString(cmd, "filter-author")),
		Title:      splitTerms(flagString(cmd, "filter-title")),
	}
	if !filters.IsEmpty() {
		opts.Filters = filters
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	wait, _ := cmd.Flags().GetDuration("wait")
	if wait == 0 {
		wait = defaultWait
	}
	maxRetries, _ := cmd.Flags().GetInt("max-retries")
	if maxRetries == 0 {
		maxRetries = defaultRetries
	}
	partial, _ := cmd.Flags().GetBool("partial")

	cfg := types.HarvestConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent(),
		},
		MaxRetries: maxRetries,
		RetryWait:  wait,
		Partial:    partial,
	}

	client := &http.Client{Timeout: cfg.Timeout}
	session := oai.NewSession(client, cfg, os.Stderr)

	records, err := session.Scrape(cmd.Context(), category, opts)
	if err != nil {
		if !partial || len(records) == 0 {
			return err
		}
		fmt.Fprintf(os.Stderr, "warning: harvest incomplete: %v\n", err)
	}

	return writeOutputs(cmd, category, fromStr, untilStr, filters, records)
}

// writeOutputs renders the records to every requested sink.
func writeOutputs(cmd *cobra.Command, category, from, until string, filters *oai.FilterSpec, records []types.Record) error {
	if path, _ := cmd.Flags().GetString("save"); path != "" {
		params := export.HarvestParams{
			Category:         category,
			From:             from,
			Until:            until,
			FilterCategories: filters.Categories,
			FilterAbstract:   filters.Abstract,
			FilterAuthor:     filters.Author,
			FilterTitle:      filters.Title,
		}
		if err := export.WriteHarvestFile(path, params, records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved harvest file: %s\n", path)
	}

	if path, _ := cmd.Flags().GetString("db"); path != "" {
		s, err := store.Open(path)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Save(records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "archived %d records: %s\n", len(records), path)
	}

	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		if err := export.WriteCSV(records, f); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote CSV: %s\n", path)
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return export.FormatJSON(records, os.Stdout)
	}
	export.FormatTable(records, os.Stdout)
	return nil
}

// userAgent appends the configured contact email, when present, per
// arXiv's polite-access guidance.
func userAgent() string {
	if email := loadedSecrets["contact-email"]; email != "" {
		return fmt.Sprintf("%s (mailto:%s)", defaultUserAgent, email)
	}
	return defaultUserAgent
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateFmt, s)
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// splitTerms splits a comma-separated flag value into trimmed, non-empty
// terms.
func splitTerms(s string) []string {
	if s == "" {
		return nil
	}
	var terms []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
