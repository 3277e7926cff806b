// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy maps arXiv category codes to the OAI-PMH set
// identifiers the export endpoint harvests by. User-facing codes are the
// familiar short forms ("cs", "cond-mat", "stat.ML"); the protocol set id
// is a distinct string ("cs", "physics:cond-mat", "stat").
package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned by Resolve for codes that are not in the
// registry. Callers test with errors.Is.
var ErrUnknownCategory = errors.New("unknown category")

// Category describes one harvestable arXiv category.
type Category struct {
	// Code is the user-facing group code (e.g. "cond-mat").
	Code string

	// Subcode is the subject-class suffix when the user asked for one
	// (e.g. "stat-mech" from "cond-mat.stat-mech"), empty otherwise.
	Subcode string

	// Name is the human-readable category name.
	Name string

	// SetID is the OAI-PMH setSpec used in ListRecords requests.
	SetID string
}

// String returns the user-facing form of the category.
func (c Category) String() string {
	if c.Subcode != "" {
		return c.Code + "." + c.Subcode
	}
	return c.Code
}

// group is one registry entry: a harvestable set plus its subject classes.
type group struct {
	code     string
	name     string
	setID    string
	subcodes []string
}

// groups is the static registry, in arXiv's canonical set order. The OAI
// endpoint exposes physics archives as subsets of the "physics" set
// hierarchy, hence the "physics:" prefixes.
var groups = []group{
	{code: "cs", name: "Computer Science", setID: "cs"},
	{code: "econ", name: "Economics", setID: "econ"},
	{code: "eess", name: "Electrical Engineering and Systems Science", setID: "eess"},
	{code: "math", name: "Mathematics", setID: "math", subcodes: []string{
		"AG", "AT", "AP", "CT", "CA", "CO", "AC", "CV", "DG", "DS", "FA",
		"GM", "GN", "GT", "GR", "HO", "IT", "KT", "LO", "MP", "MG", "NT",
		"NA", "OA", "OC", "PR", "QA", "RT", "RA", "SP", "ST", "SG",
	}},
	{code: "astro-ph", name: "Astrophysics", setID: "physics:astro-ph", subcodes: []string{
		"GA", "CO", "EP", "HE", "IM", "SR",
	}},
	{code: "cond-mat", name: "Condensed Matter", setID: "physics:cond-mat", subcodes: []string{
		"dis-nn", "mtrl-sci", "mes-hall", "other", "quant-gas", "soft",
		"stat-mech", "str-el", "supr-con",
	}},
	{code: "gr-qc", name: "General Relativity and Quantum Cosmology", setID: "physics:gr-qc"},
	{code: "hep-ex", name: "High Energy Physics - Experiment", setID: "physics:hep-ex"},
	{code: "hep-lat", name: "High Energy Physics - Lattice", setID: "physics:hep-lat"},
	{code: "hep-ph", name: "High Energy Physics - Phenomenology", setID: "physics:hep-ph"},
	{code: "hep-th", name: "High Energy Physics - Theory", setID: "physics:hep-th"},
	{code: "math-ph", name: "Mathematical Physics", setID: "physics:math-ph"},
	{code: "nlin", name: "Nonlinear Sciences", setID: "physics:nlin", subcodes: []string{
		"AO", "CG", "CD", "SI", "PS",
	}},
	{code: "nucl-ex", name: "Nuclear Experiment", setID: "physics:nucl-ex"},
	{code: "nucl-th", name: "Nuclear Theory", setID: "physics:nucl-th"},
	{code: "physics", name: "Physics", setID: "physics:physics", subcodes: []string{
		"acc-ph", "app-ph", "ao-ph", "atom-ph", "atm-clus", "bio-ph",
		"chem-ph", "class-ph", "comp-ph", "data-an", "flu-dyn", "gen-ph",
		"geo-ph", "hist-ph", "ins-det", "med-ph", "optics", "ed-ph",
		"soc-ph", "plasm-ph", "pop-ph", "space-ph",
	}},
	{code: "quant-ph", name: "Quantum Physics", setID: "physics:quant-ph"},
	{code: "q-bio", name: "Quantitative Biology", setID: "q-bio", subcodes: []string{
		"BM", "CB", "GN", "MN", "NC", "OT", "PE", "QM", "SC", "TO",
	}},
	{code: "q-fin", name: "Quantitative Finance", setID: "q-fin", subcodes: []string{
		"CP", "EC", "GN", "MF", "PM", "PR", "RM", "ST", "TR",
	}},
	{code: "stat", name: "Statistics", setID: "stat", subcodes: []string{
		"AP", "CO", "ML", "ME", "OT", "TH",
	}},
}

// byCode indexes groups for lookup; built and validated at init.
var byCode map[string]group

func init() {
	byCode = make(map[string]group, len(groups))
	for _, g := range groups {
		if _, dup := byCode[g.code]; dup {
			panic(fmt.Sprintf("taxonomy: duplicate category code %q", g.code))
		}
		seen := make(map[string]bool, len(g.subcodes))
		for _, sc := range g.subcodes {
			if seen[sc] {
				panic(fmt.Sprintf("taxonomy: duplicate subcode %q under %q", sc, g.code))
			}
			seen[sc] = true
		}
		byCode[g.code] = g
	}
}

// Resolve translates a user-supplied category string ("cond-mat" or
// "cond-mat.stat-mech") into a Category. The subcode, when given, must be a
// registered subject class of the group.
func Resolve(s string) (Category, error) {
	code, subcode, _ := strings.Cut(s, ".")

	g, ok := byCode[code]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	if subcode != "" && !hasSubcode(g, subcode) {
		return Category{}, fmt.Errorf("%w: %q has no subject class %q", ErrUnknownCategory, code, subcode)
	}

	return Category{Code: g.code, Subcode: subcode, Name: g.name, SetID: g.setID}, nil
}

func hasSubcode(g group, subcode string) bool {
	for _, sc := range g.subcodes {
		if sc == subcode {
			return true
		}
	}
	return false
}

// All returns every registered group category in registry order. Subject
// classes are not expanded; use Subcodes for those.
func All() []Category {
	out := make([]Category, 0, len(groups))
	for _, g := range groups {
		out = append(out, Category{Code: g.code, Name: g.name, SetID: g.setID})
	}
	return out
}

// Subcodes returns the registered subject-class suffixes for a group code,
// nil when the group has none or is unknown.
func Subcodes(code string) []string {
	g, ok := byCode[code]
	if !ok {
		return nil
	}
	return append([]string(nil), g.subcodes...)
}
