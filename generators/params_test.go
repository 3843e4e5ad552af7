package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBindParams_Success verifies that valid tokens bind to their declared
// kinds in schema order.
func TestBindParams_Success(t *testing.T) {
	vals, err := bindParams(erdosRenyiModel, []string{"10", "0.25"})
	require.NoError(t, err)
	require.Len(t, vals, 2)

	assert.Equal(t, 10, vals[0].count())
	assert.Equal(t, 0.25, vals[1].prob())
}

// TestBindParams_Arity verifies that any token count other than the schema
// length yields ErrArityMismatch, before any parsing happens.
func TestBindParams_Arity(t *testing.T) {
	tests := []struct {
		name   string
		m      model
		tokens []string
	}{
		{name: "no tokens for chain", m: chainModel, tokens: nil},
		{name: "too many for chain", m: chainModel, tokens: []string{"1", "2", "3"}},
		{name: "too few for watts_strogatz", m: wattsStrogatzModel, tokens: []string{"20", "4"}},
		{name: "garbage tokens still fail on arity first", m: chainModel, tokens: []string{"x", "y"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bindParams(tc.m, tc.tokens)
			assert.ErrorIs(t, err, ErrArityMismatch)
		})
	}
}

// TestBindParams_ParseAndRange walks the kind/range taxonomy per token.
func TestBindParams_ParseAndRange(t *testing.T) {
	tests := []struct {
		name   string
		m      model
		tokens []string
		want   error
	}{
		{name: "count is not a number", m: chainModel, tokens: []string{"abc"}, want: ErrParameterParse},
		{name: "count is negative", m: chainModel, tokens: []string{"-3"}, want: ErrParameterParse},
		{name: "count is fractional", m: chainModel, tokens: []string{"2.5"}, want: ErrParameterParse},
		{name: "count is empty", m: chainModel, tokens: []string{""}, want: ErrParameterParse},
		{name: "count below minimum", m: chainModel, tokens: []string{"0"}, want: ErrParameterRange},
		{name: "probability is not a number", m: erdosRenyiModel, tokens: []string{"10", "high"}, want: ErrParameterParse},
		{name: "probability below zero", m: erdosRenyiModel, tokens: []string{"10", "-0.1"}, want: ErrParameterRange},
		{name: "probability above one", m: erdosRenyiModel, tokens: []string{"10", "1.5"}, want: ErrParameterRange},
		{name: "probability NaN", m: erdosRenyiModel, tokens: []string{"10", "NaN"}, want: ErrParameterRange},
		{name: "attachment count zero", m: barabasiAlbertModel, tokens: []string{"5", "0"}, want: ErrParameterRange},
		{name: "attachment count not below n", m: barabasiAlbertModel, tokens: []string{"5", "10"}, want: ErrParameterRange},
		{name: "attachment count equal to n", m: barabasiAlbertModel, tokens: []string{"5", "5"}, want: ErrParameterRange},
		{name: "lattice degree odd", m: wattsStrogatzModel, tokens: []string{"20", "3", "0.1"}, want: ErrParameterRange},
		{name: "lattice degree not below n", m: wattsStrogatzModel, tokens: []string{"4", "4", "0.1"}, want: ErrParameterRange},
		{name: "lattice degree too small", m: wattsStrogatzModel, tokens: []string{"20", "0", "0.1"}, want: ErrParameterRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bindParams(tc.m, tc.tokens)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBindParams_ErrorContext spot-checks that wrapped messages carry the
// model name and the offending token, without asserting exact strings.
func TestBindParams_ErrorContext(t *testing.T) {
	_, err := bindParams(erdosRenyiModel, []string{"10", "oops"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "erdos_renyi")
	assert.Contains(t, err.Error(), `"oops"`)
	assert.Contains(t, err.Error(), "p")
}

// TestBindParams_BoundaryProbabilities verifies the closed interval: both
// endpoints of [0,1] bind cleanly.
func TestBindParams_BoundaryProbabilities(t *testing.T) {
	for _, tok := range []string{"0", "1", "0.0", "1.0"} {
		_, err := bindParams(erdosRenyiModel, []string{"5", tok})
		assert.NoError(t, err, "p=%s is inside the closed interval", tok)
	}
}
