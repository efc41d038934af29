package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidQuoteInput возвращается при некорректных входных данных расчёта
var ErrInvalidQuoteInput = errors.New("pricing: invalid input")

// MealPrices per-unit prices for each meal
type MealPrices struct {
	Breakfast int64
	Lunch     int64
	Dinner    int64
}

// PricingRules holds the configured pricing constants
type PricingRules struct {
	MealPrices MealPrices

	LongStayNights                int
	LongStayDiscountPercent       float64
	RepeatCustomerDiscountPercent float64
}

// DefaultPricingRules returns the canonical rule set
func DefaultPricingRules() PricingRules {
	return PricingRules{
		MealPrices: MealPrices{
			Breakfast: DefaultBreakfastPrice,
			Lunch:     DefaultLunchPrice,
			Dinner:    DefaultDinnerPrice,
		},
		LongStayNights:                DefaultLongStayNights,
		LongStayDiscountPercent:       DefaultLongStayDiscountPercent,
		RepeatCustomerDiscountPercent: DefaultRepeatCustomerDiscountPercent,
	}
}

// QuoteInput input parameters for a price calculation.
// Meal counts are totals over the whole stay.
type QuoteInput struct {
	NightlyRate int64
	Nights      int
	GuestsCount int

	BreakfastCount int
	LunchCount     int
	DinnerCount    int

	RepeatCustomer bool
}

// PriceBreakdown itemized result of a price calculation.
// All components are exposed so the caller can display an itemized quote.
type PriceBreakdown struct {
	BaseTotal  int64 // nightly rate * nights
	MealsTotal int64
	Subtotal   int64 // BaseTotal + MealsTotal

	NightsDiscountPercent float64
	RepeatDiscountPercent float64
	DiscountPercent       float64 // additive sum of the components

	FinalAmount int64 // Subtotal less discount, rounded half-up to a whole unit
}

// CalculateQuote computes an itemized cost breakdown for a booking.
// Pure function, no side effects.
//
// Discounts are additive percentages off the subtotal (5% + 5% = 10%, not
// compounding). The final amount is rounded half-up to the nearest whole
// currency unit.
func CalculateQuote(in QuoteInput, rules PricingRules) (PriceBreakdown, error) {
	if in.NightlyRate <= 0 {
		return PriceBreakdown{}, fmt.Errorf("%w: nightly rate must be positive", ErrInvalidQuoteInput)
	}
	if in.Nights <= 0 {
		return PriceBreakdown{}, fmt.Errorf("%w: nights must be positive", ErrInvalidQuoteInput)
	}
	if in.GuestsCount <= 0 {
		return PriceBreakdown{}, fmt.Errorf("%w: guests count must be positive", ErrInvalidQuoteInput)
	}
	if in.BreakfastCount < 0 || in.LunchCount < 0 || in.DinnerCount < 0 {
		return PriceBreakdown{}, fmt.Errorf("%w: meal counts must not be negative", ErrInvalidQuoteInput)
	}

	baseTotal := in.NightlyRate * int64(in.Nights)

	mealsTotal := int64(in.BreakfastCount)*rules.MealPrices.Breakfast +
		int64(in.LunchCount)*rules.MealPrices.Lunch +
		int64(in.DinnerCount)*rules.MealPrices.Dinner

	subtotal := baseTotal + mealsTotal

	var nightsDiscount, repeatDiscount float64
	if in.Nights >= rules.LongStayNights {
		nightsDiscount = rules.LongStayDiscountPercent
	}
	if in.RepeatCustomer {
		repeatDiscount = rules.RepeatCustomerDiscountPercent
	}
	discount := nightsDiscount + repeatDiscount

	finalAmount := int64(math.Floor(float64(subtotal)*(1-discount/100) + 0.5))

	return PriceBreakdown{
		BaseTotal:             baseTotal,
		MealsTotal:            mealsTotal,
		Subtotal:              subtotal,
		NightsDiscountPercent: nightsDiscount,
		RepeatDiscountPercent: repeatDiscount,
		DiscountPercent:       discount,
		FinalAmount:           finalAmount,
	}, nil
}
