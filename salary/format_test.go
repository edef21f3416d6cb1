package salary_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastlonn/kalkulator/salary"
)

func TestParseNumber_NorwegianFormats(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"600 000", "600000"},
		{"600000", "600000"},
		{"7,5", "7.5"},
		{"12", "12"},
		{" 1 234,50 ", "1234.5"},
	}

	for _, c := range cases {
		got, ok := salary.ParseNumber(c.in)
		require.True(t, ok, "input %q", c.in)
		assert.True(t, got.Equal(dec(c.want)), "input %q: got %s", c.in, got)
	}
}

func TestParseNumber_NonNumericIsNoValueYet(t *testing.T) {
	// Parse failures mean "no value yet", never an error.
	for _, in := range []string{"", "   ", "abc", "12,3,4", "kr 100"} {
		_, ok := salary.ParseNumber(in)
		assert.False(t, ok, "input %q should not parse", in)
	}
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "616 000", salary.FormatThousands(dec("616000"), 0))
	assert.Equal(t, "1 234 567,50", salary.FormatThousands(dec("1234567.5"), 2))
	assert.Equal(t, "325,93", salary.FormatThousands(dec("325.93"), 2))
	assert.Equal(t, "-12 000", salary.FormatThousands(decimal.NewFromInt(-12000), 0))
	assert.Equal(t, "999", salary.FormatThousands(dec("999"), 0))
}
