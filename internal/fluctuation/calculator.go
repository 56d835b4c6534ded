package fluctuation

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Price limits enforced before any band lookup.
const (
	MinPrice = 0.01
	MaxPrice = 1_000_000
)

var (
	minPrice = decimal.New(1, -2) // 0.01
	maxPrice = decimal.NewFromInt(1_000_000)
)

// tickRule is one tick-size requirement for a price range. Rules are
// checked in order; the first rule whose upper edge is zero (no limit) or
// strictly above the price applies.
type tickRule struct {
	max    decimal.Decimal // exclusive upper edge, zero = no limit
	step   decimal.Decimal // price must be an integer multiple of step
	reason string
}

// Tick rules are fixed by exchange regulation. They nearly mirror the band
// table edges but are a separate rule set: [100,500) is a single tick range
// even though the table splits it at 150. Do not derive one from the other.
var tickRules = []tickRule{
	{max: decimal.NewFromInt(10), step: decimal.New(1, -2), reason: "in range 0.01-10 must have at most 2 decimal places"},
	{max: decimal.NewFromInt(50), step: decimal.New(5, -2), reason: "in range 10-50 must be a multiple of 0.05"},
	{max: decimal.NewFromInt(100), step: decimal.New(1, -1), reason: "in range 50-100 must be a multiple of 0.1"},
	{max: decimal.NewFromInt(500), step: decimal.New(5, -1), reason: "in range 100-500 must be a multiple of 0.5"},
	{max: decimal.NewFromInt(1000), step: decimal.NewFromInt(1), reason: "in range 500-1000 must be an integer"},
	{step: decimal.NewFromInt(5), reason: "above 1000 must be an integer multiple of 5"},
}

// ComputeFluctuationRange validates a reference price against the exchange
// rules and returns the lowest and highest prices it may reach in one
// trading session.
//
// Validation order (first failure wins, all reported as *InvalidPriceError):
//  1. input parses as a number
//  2. value is strictly positive
//  3. value is >= 0.01
//  4. value is <= 1,000,000
//  5. tick-size conformance for the price's range
//
// Parameters:
//   - price (string): the reference price as supplied by the caller.
//   - table (Table): the band table from BuildRangeTable().
//
// Returns:
//   - float64: lower limit, rounded to 2 decimal places.
//   - float64: upper limit, rounded to 2 decimal places.
//   - error: *InvalidPriceError naming the violated rule, or nil.
func ComputeFluctuationRange(price string, table Table) (float64, float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return 0, 0, &InvalidPriceError{Input: price, Reason: "price must be a number"}
	}
	return computeRange(strings.TrimSpace(price), d, table)
}

// ComputeFluctuationRangeFloat is a convenience wrapper for callers that
// already hold the price as a number.
func ComputeFluctuationRangeFloat(price float64, table Table) (float64, float64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, 0, &InvalidPriceError{Input: fmt.Sprintf("%v", price), Reason: "price must be a number"}
	}
	d := decimal.NewFromFloat(price)
	return computeRange(d.String(), d, table)
}

func computeRange(input string, price decimal.Decimal, table Table) (float64, float64, error) {
	if price.Sign() <= 0 {
		return 0, 0, &InvalidPriceError{Input: input, Reason: "price is not positive"}
	}
	if price.LessThan(minPrice) {
		return 0, 0, &InvalidPriceError{Input: input, Reason: "price is below the minimum allowed price of 0.01"}
	}
	if price.GreaterThan(maxPrice) {
		return 0, 0, &InvalidPriceError{Input: input, Reason: "price exceeds the maximum allowed price of 1,000,000"}
	}

	idx := table.locate(price)
	band := table[idx]

	if err := checkTick(input, price); err != nil {
		return 0, 0, err
	}

	fluct := decimal.NewFromFloat(band.Fluctuation)

	// A price sitting exactly on a band boundary falls into the lower band
	// on its way down, so the downward move is governed by the previous
	// band's limit. The upward move always uses the current band.
	downFluct := fluct
	if idx > 0 && price.Equal(decimal.NewFromFloat(band.Start)) {
		downFluct = decimal.NewFromFloat(table[idx-1].Fluctuation)
	}

	down := price.Sub(downFluct)
	if down.LessThan(minPrice) {
		down = minPrice
	}
	// Keeps the lower limit from exceeding the price itself should a band
	// ever carry a zero or negative fluctuation.
	if down.GreaterThan(price) {
		down = price
	}
	up := price.Add(fluct)

	return down.Round(2).InexactFloat64(), up.Round(2).InexactFloat64(), nil
}

// checkTick enforces the tick-size rule for the range containing price.
// Decimal modulo keeps the checks exact; a float remainder would
// misclassify prices like 10.05.
func checkTick(input string, price decimal.Decimal) error {
	for _, r := range tickRules {
		if !r.max.IsZero() && !price.LessThan(r.max) {
			continue
		}
		if !price.Mod(r.step).IsZero() {
			return &InvalidPriceError{Input: input, Reason: "price " + r.reason}
		}
		return nil
	}
	return nil
}
