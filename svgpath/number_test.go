package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"12", 12},
		{" -3.5 ", -3.5},
		{"40px", 40},
		{"50%", 50},
		{"1e3", 1000},
	} {
		got, err := ParseNumber(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseNumber("wide")
	assert.Error(t, err)
}

func TestParseNumberList(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []float64
	}{
		{"1 2 3", []float64{1, 2, 3}},
		{"1,2,3", []float64{1, 2, 3}},
		{" 10 , -5 ", []float64{10, -5}},
		{"10-5", []float64{10, -5}},
		{"-1-2-3", []float64{-1, -2, -3}},
		{"1e-3 2E-2", []float64{0.001, 0.02}},
		{"3.14", []float64{3.14}},
		{"", nil},
	} {
		got, err := ParseNumberList(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseNumberList("1 two 3")
	assert.Error(t, err)
}
