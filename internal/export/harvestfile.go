// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Lyalpha/arxivscraper/pkg/types"
)

// HarvestFile is the on-disk representation of one harvest run: the
// parameters that produced it plus the records. A saved run can be reloaded
// later without re-driving the OAI conversation.
type HarvestFile struct {
	Query   HarvestParams  `yaml:"query"`
	Records []types.Record `yaml:"records"`
	Summary HarvestSummary `yaml:"summary"`
}

// HarvestParams stores the harvest parameters in a serializable form.
type HarvestParams struct {
	Category         string   `yaml:"category"`
	From             string   `yaml:"from,omitempty"`
	Until            string   `yaml:"until,omitempty"`
	FilterCategories []string `yaml:"filter_categories,omitempty"`
	FilterAbstract   []string `yaml:"filter_abstract,omitempty"`
	FilterAuthor     []string `yaml:"filter_author,omitempty"`
	FilterTitle      []string `yaml:"filter_title,omitempty"`
}

// HarvestSummary stores record counts and a timestamp.
type HarvestSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteHarvestFile saves harvest parameters and records to a YAML file.
func WriteHarvestFile(path string, params HarvestParams, records []types.Record) error {
	hf := HarvestFile{
		Query:   params,
		Records: records,
		Summary: HarvestSummary{
			Total:     len(records),
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&hf)
	if err != nil {
		return fmt.Errorf("marshaling harvest file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing harvest file: %w", err)
	}
	return nil
}

// ReadHarvestFile loads a previously saved harvest run.
func ReadHarvestFile(path string) (*HarvestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading harvest file: %w", err)
	}
	var hf HarvestFile
	if err := yaml.Unmarshal(data, &hf); err != nil {
		return nil, fmt.Errorf("parsing harvest file %s: %w", path, err)
	}
	return &hf, nil
}
