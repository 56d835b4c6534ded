package models

// PriceBand represents one row of the TWSE fluctuation band table.
//
// Fields:
//   - Start: inclusive lower edge of the band.
//   - End: exclusive upper edge; +Inf for the top band.
//   - Fluctuation: maximum absolute price movement allowed inside the band.
//
// A reference price belongs to exactly one band (Start <= price < End).
type PriceBand struct {
	Start       float64 `json:"start" example:"10"`
	End         float64 `json:"end" example:"50"`
	Fluctuation float64 `json:"fluctuation" example:"0.05"`
}
