package fluctuation

import (
	"fmt"
	"math"
	"sort"

	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/domain/models"
	"github.com/shopspring/decimal"
)

// Table is the ordered list of price bands used to look up the fluctuation
// limit for a reference price. It is built once at startup and never
// mutated, so it is safe to share between concurrent callers.
type Table []models.PriceBand

// BuildRangeTable returns the seven TWSE price bands in ascending start
// order. Each band is (start inclusive, end exclusive, fluctuation limit);
// the top band is open-ended.
//
// Returns:
//   - Table: the immutable band table.
func BuildRangeTable() Table {
	return Table{
		{Start: 0.01, End: 10, Fluctuation: 0.01},
		{Start: 10, End: 50, Fluctuation: 0.05},
		{Start: 50, End: 100, Fluctuation: 0.1},
		{Start: 100, End: 150, Fluctuation: 0.5},
		{Start: 150, End: 500, Fluctuation: 0.5},
		{Start: 500, End: 1000, Fluctuation: 1.0},
		{Start: 1000, End: math.Inf(1), Fluctuation: 5.0},
	}
}

// Validate checks the structural invariants of the table: non-empty,
// starts ascending, bands contiguous (each end equals the next start),
// top band open-ended, and every fluctuation positive.
//
// Used by the readiness probe; a table that fails here would silently
// produce wrong limits.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("range table is empty")
	}
	for i, b := range t {
		if b.Fluctuation <= 0 {
			return fmt.Errorf("band %d: fluctuation %v is not positive", i, b.Fluctuation)
		}
		if b.Start >= b.End {
			return fmt.Errorf("band %d: start %v not below end %v", i, b.Start, b.End)
		}
		if i > 0 && t[i-1].End != b.Start {
			return fmt.Errorf("band %d: gap or overlap at %v", i, b.Start)
		}
	}
	if !math.IsInf(t[len(t)-1].End, 1) {
		return fmt.Errorf("top band must be open-ended")
	}
	return nil
}

// locate returns the index of the rightmost band whose start is <= price.
// The caller guarantees price >= the first band's start, so the result is
// always a valid index and the containing band (start <= price < end).
func (t Table) locate(price decimal.Decimal) int {
	return sort.Search(len(t), func(i int) bool {
		return decimal.NewFromFloat(t[i].Start).GreaterThan(price)
	}) - 1
}
