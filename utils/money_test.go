package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	valid := map[string]int64{
		"3.75":    375,
		"$3.75":   375,
		" $ 12 ":  1200,
		"0":       0,
		"0.5":     50,
		"1999.99": 199999,
		"$0.01":   1,
		"10.10":   1010,
	}
	for in, want := range valid {
		got, err := ParsePrice(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "$", "-3.75", "$-1", "abc", "1.005", "3.75.1", "1e400"} {
		_, err := ParsePrice(in)
		assert.ErrorIs(t, err, ErrInvalidPrice, "input %q", in)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "3.75", FormatPrice(375))
	assert.Equal(t, "0.05", FormatPrice(5))
	assert.Equal(t, "12.00", FormatPrice(1200))
}
