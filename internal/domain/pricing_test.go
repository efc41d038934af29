package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateQuote_BaseAndMeals(t *testing.T) {
	rules := DefaultPricingRules()

	breakdown, err := CalculateQuote(QuoteInput{
		NightlyRate:    4500,
		Nights:         2,
		GuestsCount:    2,
		BreakfastCount: 4,
		LunchCount:     2,
		DinnerCount:    2,
	}, rules)
	require.NoError(t, err)

	assert.Equal(t, int64(9000), breakdown.BaseTotal)
	// 4*300 + 2*600 + 2*800
	assert.Equal(t, int64(4000), breakdown.MealsTotal)
	assert.Equal(t, int64(13000), breakdown.Subtotal)
	assert.Equal(t, 0.0, breakdown.DiscountPercent)
	assert.Equal(t, int64(13000), breakdown.FinalAmount)
}

func TestCalculateQuote_LongStayDiscount(t *testing.T) {
	rules := DefaultPricingRules()

	breakdown, err := CalculateQuote(QuoteInput{
		NightlyRate: 4500,
		Nights:      3,
		GuestsCount: 1,
	}, rules)
	require.NoError(t, err)

	assert.Equal(t, int64(13500), breakdown.Subtotal)
	assert.Equal(t, 5.0, breakdown.NightsDiscountPercent)
	assert.Equal(t, 0.0, breakdown.RepeatDiscountPercent)
	assert.Equal(t, int64(12825), breakdown.FinalAmount)
}

func TestCalculateQuote_DiscountsAreAdditive(t *testing.T) {
	rules := DefaultPricingRules()

	breakdown, err := CalculateQuote(QuoteInput{
		NightlyRate:    2000,
		Nights:         4,
		GuestsCount:    2,
		RepeatCustomer: true,
	}, rules)
	require.NoError(t, err)

	// 5% за длительное проживание + 5% постоянному клиенту = 10%, не 9.75%
	assert.Equal(t, 10.0, breakdown.DiscountPercent)
	assert.Equal(t, int64(7200), breakdown.FinalAmount)
}

func TestCalculateQuote_ShortStayNoNightsDiscount(t *testing.T) {
	rules := DefaultPricingRules()

	breakdown, err := CalculateQuote(QuoteInput{
		NightlyRate: 2000,
		Nights:      2,
		GuestsCount: 1,
	}, rules)
	require.NoError(t, err)

	assert.Equal(t, 0.0, breakdown.NightsDiscountPercent)
	assert.Equal(t, int64(4000), breakdown.FinalAmount)
}

func TestCalculateQuote_RoundsHalfUp(t *testing.T) {
	rules := DefaultPricingRules()

	// 1010 * 0.95 = 959.5, округляется вверх до 960
	breakdown, err := CalculateQuote(QuoteInput{
		NightlyRate: 1010,
		Nights:      3,
		GuestsCount: 1,
	}, rules)
	require.NoError(t, err)

	assert.Equal(t, int64(3030), breakdown.Subtotal)
	assert.Equal(t, int64(2879), breakdown.FinalAmount) // 3030*0.95 = 2878.5
}

func TestCalculateQuote_InvalidInput(t *testing.T) {
	rules := DefaultPricingRules()

	tests := []struct {
		name string
		in   QuoteInput
	}{
		{
			name: "zero nightly rate",
			in:   QuoteInput{NightlyRate: 0, Nights: 2, GuestsCount: 1},
		},
		{
			name: "negative nights",
			in:   QuoteInput{NightlyRate: 1000, Nights: -1, GuestsCount: 1},
		},
		{
			name: "zero guests",
			in:   QuoteInput{NightlyRate: 1000, Nights: 2, GuestsCount: 0},
		},
		{
			name: "negative meal count",
			in:   QuoteInput{NightlyRate: 1000, Nights: 2, GuestsCount: 1, BreakfastCount: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateQuote(tt.in, rules)
			assert.ErrorIs(t, err, ErrInvalidQuoteInput)
		})
	}
}
