// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_GroupCodes(t *testing.T) {
	tests := []struct {
		code    string
		wantSet string
	}{
		{"cs", "cs"},
		{"math", "math"},
		{"astro-ph", "physics:astro-ph"},
		{"cond-mat", "physics:cond-mat"},
		{"hep-th", "physics:hep-th"},
		{"q-fin", "q-fin"},
		{"stat", "stat"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := Resolve(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.code, c.Code)
			assert.Empty(t, c.Subcode)
			assert.Equal(t, tt.wantSet, c.SetID)
			assert.NotEmpty(t, c.Name)
		})
	}
}

func TestResolve_Subcodes(t *testing.T) {
	c, err := Resolve("cond-mat.stat-mech")
	require.NoError(t, err)
	assert.Equal(t, "cond-mat", c.Code)
	assert.Equal(t, "stat-mech", c.Subcode)
	assert.Equal(t, "physics:cond-mat", c.SetID)
	assert.Equal(t, "cond-mat.stat-mech", c.String())

	c, err = Resolve("stat.ML")
	require.NoError(t, err)
	assert.Equal(t, "stat", c.SetID)
	assert.Equal(t, "ML", c.Subcode)
}

func TestResolve_Unknown(t *testing.T) {
	for _, s := range []string{
		"",
		"biology",
		"cs.ZZ",          // cs has no registered subject classes
		"cond-mat.nope",  // unknown subject class
		"stat.ml",        // subject classes are case-sensitive
		"physics:hep-th", // set ids are not user-facing codes
	} {
		t.Run(s, func(t *testing.T) {
			_, err := Resolve(s)
			assert.ErrorIs(t, err, ErrUnknownCategory)
		})
	}
}

func TestAll(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	// Registry order is stable and codes are unique.
	assert.Equal(t, "cs", all[0].Code)
	seen := make(map[string]bool, len(all))
	for _, c := range all {
		assert.False(t, seen[c.Code], "duplicate code %q", c.Code)
		seen[c.Code] = true
		assert.NotEmpty(t, c.SetID)
	}
}

func TestSubcodes(t *testing.T) {
	assert.Contains(t, Subcodes("stat"), "ML")
	assert.Empty(t, Subcodes("hep-th"))
	assert.Empty(t, Subcodes("nope"))
}
