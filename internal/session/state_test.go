package session

import (
	"errors"
	"testing"

	"github.com/rateproj/rate-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bill(dollars, monthlyUsage string) domain.BillingInput {
	u := decimal.RequireFromString(monthlyUsage)
	return domain.BillingInput{MonthlyDollars: decimal.RequireFromString(dollars), MonthlyUsage: &u}
}

func params() domain.ProjectionParams {
	return domain.ProjectionParams{
		HorizonYears:       25,
		BaselineGrowthRate: decimal.NewFromFloat(0.035),
		ComparisonRate0:    decimal.NewFromFloat(0.09),
	}
}

func TestDerive_WithoutBaseline(t *testing.T) {
	_, err := New().Derive(params())
	assert.ErrorIs(t, err, ErrNoBaseline)
	assert.False(t, New().HasBaseline())
}

func TestRecalculate_ReturnsNewState(t *testing.T) {
	empty := New()
	s, err := empty.Recalculate(bill("120", "900"))
	require.NoError(t, err)

	assert.True(t, s.HasBaseline())
	assert.False(t, empty.HasBaseline(), "receiver must not change")

	b, ok := s.Baseline()
	require.True(t, ok)
	assert.Equal(t, "0.133333", b.RatePerUnit.StringFixed(6))
	assert.True(t, s.Input().MonthlyDollars.Equal(decimal.NewFromInt(120)))

	p, err := s.Derive(params())
	require.NoError(t, err)
	assert.Equal(t, 25, p.Len())
	assert.Equal(t, "1440.00", p.Records[0].BaselineCost.StringFixed(2))
}

func TestRecalculate_ValidationKeepsPreviousBaseline(t *testing.T) {
	s, err := New().Recalculate(bill("120", "900"))
	require.NoError(t, err)

	next, err := s.Recalculate(bill("0", "900"))
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.CodeInvalidBillAmount, verr.Code)

	b, ok := next.Baseline()
	require.True(t, ok)
	assert.Equal(t, "0.133333", b.RatePerUnit.StringFixed(6))
}

func TestRecalculate_ReplacesBaseline(t *testing.T) {
	s, err := New().Recalculate(bill("120", "900"))
	require.NoError(t, err)
	s2, err := s.Recalculate(bill("100", "500"))
	require.NoError(t, err)

	b1, _ := s.Baseline()
	b2, _ := s2.Baseline()
	assert.False(t, b1.RatePerUnit.Equal(b2.RatePerUnit))
	assert.Equal(t, "0.200000", b2.RatePerUnit.StringFixed(6))
}

func TestDeriveStrict(t *testing.T) {
	s, err := New().Recalculate(bill("120", "900"))
	require.NoError(t, err)

	noOffer := params()
	noOffer.ComparisonRate0 = decimal.Zero
	_, err = s.DeriveStrict(noOffer)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.CodeMissingComparison, verr.Code)

	// Lenient derive projects with a zero comparison line
	p, err := s.Derive(noOffer)
	require.NoError(t, err)
	assert.True(t, p.Records[0].ComparisonCost.IsZero())

	p, err = s.DeriveStrict(params())
	require.NoError(t, err)
	assert.Equal(t, "972.00", p.Records[0].ComparisonCost.StringFixed(2))

	_, err = New().DeriveStrict(params())
	assert.ErrorIs(t, err, ErrNoBaseline)
}
