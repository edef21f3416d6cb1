package grunnbelop_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastlonn/kalkulator/grunnbelop"
)

func TestForYear_KnownValues(t *testing.T) {
	assert.True(t, grunnbelop.ForYear(2024).Equal(decimal.NewFromInt(124028)))
	assert.True(t, grunnbelop.ForYear(2020).Equal(decimal.NewFromInt(101351)))
	assert.False(t, grunnbelop.IsEstimate(2023))
}

func TestSixG(t *testing.T) {
	assert.True(t, grunnbelop.SixG(2025).Equal(decimal.NewFromInt(6*130160)))
}

func TestForYear_ForwardEstimate(t *testing.T) {
	// GIVEN: A year past the known table
	// THEN: The estimate grows from the last known value and is flagged

	estimate := grunnbelop.ForYear(2027)
	require.True(t, grunnbelop.IsEstimate(2027))

	last := grunnbelop.ForYear(2025)
	assert.True(t, estimate.GreaterThan(last), "forward estimate must exceed last known value")
	// Two years at roughly 5%/year should stay well under +25%.
	assert.True(t, estimate.LessThan(last.Mul(decimal.NewFromFloat(1.25))))
	assert.True(t, estimate.Equal(estimate.Round(0)), "estimates are whole kroner")
}

func TestForYear_BackwardEstimate(t *testing.T) {
	estimate := grunnbelop.ForYear(2018)
	require.True(t, grunnbelop.IsEstimate(2018))

	first := grunnbelop.ForYear(2020)
	assert.True(t, estimate.LessThan(first), "backward estimate must undercut first known value")
	assert.True(t, estimate.IsPositive())
}
