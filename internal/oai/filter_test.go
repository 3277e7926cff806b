// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package oai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lyalpha/arxivscraper/pkg/types"
)

func testRecord() types.Record {
	return types.Record{
		ID:              "1801.00001",
		Title:           "deep learning for spin glasses",
		Abstract:        "deep learning for x",
		Categories:      []string{"cond-mat.stat-mech", "cond-mat.dis-nn"},
		Authors:         []string{"curie", "dirac"},
		AuthorFullnames: []string{"marie curie", "paul dirac"},
	}
}

func TestFilterSpec_EmptyRetainsEverything(t *testing.T) {
	var nilSpec *FilterSpec
	assert.True(t, nilSpec.Match(testRecord()))
	assert.True(t, nilSpec.IsEmpty())

	empty := &FilterSpec{}
	assert.True(t, empty.Match(testRecord()))
	assert.True(t, empty.IsEmpty())
}

func TestFilterSpec_Abstract(t *testing.T) {
	spec := &FilterSpec{Abstract: []string{"learning"}}
	assert.False(t, spec.IsEmpty())

	pass := testRecord()
	pass.Abstract = "deep learning for x"
	assert.True(t, spec.Match(pass))

	fail := testRecord()
	fail.Abstract = "a study of y"
	assert.False(t, spec.Match(fail))
}

func TestFilterSpec_CaseInsensitive(t *testing.T) {
	spec := &FilterSpec{Title: []string{"Spin Glasses"}}
	assert.True(t, spec.Match(testRecord()))
}

func TestFilterSpec_AnyTermMatches(t *testing.T) {
	spec := &FilterSpec{Categories: []string{"hep-th", "stat-mech"}}
	assert.True(t, spec.Match(testRecord()))

	spec = &FilterSpec{Categories: []string{"hep-th", "quant-ph"}}
	assert.False(t, spec.Match(testRecord()))
}

func TestFilterSpec_AllPopulatedFieldsMustMatch(t *testing.T) {
	spec := &FilterSpec{
		Abstract: []string{"learning"},
		Author:   []string{"dirac"},
	}
	assert.True(t, spec.Match(testRecord()))

	// Abstract matches but author does not.
	spec.Author = []string{"einstein"}
	assert.False(t, spec.Match(testRecord()))
}

func TestFilterSpec_AuthorMatchesFullname(t *testing.T) {
	spec := &FilterSpec{Author: []string{"marie"}}
	assert.True(t, spec.Match(testRecord()))
}

func TestFilterSpec_BlankTermsIgnored(t *testing.T) {
	spec := &FilterSpec{Abstract: []string{"  ", ""}}
	// Only blank terms: nothing can match.
	assert.False(t, spec.Match(testRecord()))
}
