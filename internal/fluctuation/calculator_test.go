package fluctuation

import (
	"errors"
	"strings"
	"testing"
)

func TestComputeFluctuationRange_ValidPrices(t *testing.T) {
	table := BuildRangeTable()

	cases := []struct {
		name  string
		price string
		lower float64
		upper float64
	}{
		{name: "mid first band", price: "5.00", lower: 4.99, upper: 5.01},
		{name: "first band floor", price: "0.01", lower: 0.01, upper: 0.02},
		{name: "just below second band", price: "9.99", lower: 9.98, upper: 10.00},
		{name: "second band start uses previous down fluct", price: "10.00", lower: 9.99, upper: 10.05},
		{name: "second band interior", price: "23.45", lower: 23.40, upper: 23.50},
		{name: "third band start", price: "50", lower: 49.95, upper: 50.1},
		{name: "third band interior", price: "75.5", lower: 75.4, upper: 75.6},
		{name: "fourth band start", price: "100.00", lower: 99.90, upper: 100.50},
		{name: "fifth band start same fluct both sides", price: "150", lower: 149.5, upper: 150.5},
		{name: "sixth band start", price: "500", lower: 499.5, upper: 501},
		{name: "sixth band interior", price: "750", lower: 749, upper: 751},
		{name: "top band start", price: "1000.00", lower: 999.00, upper: 1005.00},
		{name: "top band interior", price: "1005", lower: 1000, upper: 1010},
		{name: "maximum price", price: "1000000", lower: 999995, upper: 1000005},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lower, upper, err := ComputeFluctuationRange(tc.price, table)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lower != tc.lower || upper != tc.upper {
				t.Fatalf("price %s: got (%v, %v) want (%v, %v)",
					tc.price, lower, upper, tc.lower, tc.upper)
			}
		})
	}
}

func TestComputeFluctuationRange_InvalidPrices(t *testing.T) {
	table := BuildRangeTable()

	cases := []struct {
		name   string
		price  string
		reason string // substring expected in the error message
	}{
		{name: "not a number", price: "abc", reason: "must be a number"},
		{name: "empty", price: "", reason: "must be a number"},
		{name: "zero", price: "0", reason: "not positive"},
		{name: "negative", price: "-5", reason: "not positive"},
		{name: "below minimum", price: "0.005", reason: "below the minimum"},
		{name: "above maximum", price: "2000000", reason: "exceeds the maximum"},
		{name: "three decimals in first band", price: "5.055", reason: "at most 2 decimal places"},
		{name: "off tick in 10-50", price: "10.03", reason: "multiple of 0.05"},
		{name: "off tick in 50-100", price: "50.05", reason: "multiple of 0.1"},
		{name: "off tick in 100-500", price: "100.3", reason: "multiple of 0.5"},
		{name: "tick rule range wider than band", price: "200.3", reason: "multiple of 0.5"},
		{name: "fractional in 500-1000", price: "500.5", reason: "integer"},
		{name: "not multiple of 5 above 1000", price: "1002", reason: "integer multiple of 5"},
		{name: "fractional above 1000", price: "1002.5", reason: "integer multiple of 5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ComputeFluctuationRange(tc.price, table)
			if err == nil {
				t.Fatalf("price %s: expected error", tc.price)
			}
			var ipe *InvalidPriceError
			if !errors.As(err, &ipe) {
				t.Fatalf("price %s: want *InvalidPriceError, got %T", tc.price, err)
			}
			if !strings.Contains(err.Error(), tc.reason) {
				t.Fatalf("price %s: message %q missing %q", tc.price, err.Error(), tc.reason)
			}
		})
	}
}

// Validation order: the first failing check decides the message, so a
// negative price reports "not positive" before any tick-size complaint.
func TestComputeFluctuationRange_ValidationOrder(t *testing.T) {
	table := BuildRangeTable()

	_, _, err := ComputeFluctuationRange("-0.005", table)
	if err == nil || !strings.Contains(err.Error(), "not positive") {
		t.Fatalf("want not-positive error, got %v", err)
	}

	_, _, err = ComputeFluctuationRange("1000001", table)
	if err == nil || !strings.Contains(err.Error(), "exceeds the maximum") {
		t.Fatalf("want maximum error, got %v", err)
	}
}

func TestComputeFluctuationRange_BoundsNeverCrossPrice(t *testing.T) {
	table := BuildRangeTable()

	prices := []string{"0.01", "0.02", "5", "9.99", "10", "10.05", "49.95",
		"50", "99.9", "100", "149.5", "150", "499.5", "500", "999", "1000", "99995"}
	for _, p := range prices {
		lower, upper, err := ComputeFluctuationRange(p, table)
		if err != nil {
			t.Fatalf("price %s: unexpected error %v", p, err)
		}
		if lower > upper {
			t.Fatalf("price %s: lower %v above upper %v", p, lower, upper)
		}
		if lower < MinPrice {
			t.Fatalf("price %s: lower %v below floor", p, lower)
		}
	}
}

func TestComputeFluctuationRange_Idempotent(t *testing.T) {
	table := BuildRangeTable()

	l1, u1, err := ComputeFluctuationRange("23.45", table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l2, u2, err := ComputeFluctuationRange("23.45", table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l1 != l2 || u1 != u2 {
		t.Fatalf("same price produced different results: (%v,%v) vs (%v,%v)", l1, u1, l2, u2)
	}
}

func TestComputeFluctuationRangeFloat(t *testing.T) {
	table := BuildRangeTable()

	lower, upper, err := ComputeFluctuationRangeFloat(100, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lower != 99.9 || upper != 100.5 {
		t.Fatalf("got (%v, %v) want (99.9, 100.5)", lower, upper)
	}

	// 10.05 is exactly on tick despite having no exact float64 form.
	if _, _, err := ComputeFluctuationRangeFloat(10.05, table); err != nil {
		t.Fatalf("10.05 must pass the tick check: %v", err)
	}

	if _, _, err := ComputeFluctuationRangeFloat(10.03, table); err == nil {
		t.Fatalf("10.03 must fail the tick check")
	}
}
