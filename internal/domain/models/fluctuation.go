package models

// FluctuationRange is the permitted daily price band computed for a
// reference price.
//
// Fields:
//   - Price: the validated reference price.
//   - LowerLimit: lowest price reachable in the session.
//   - UpperLimit: highest price reachable in the session.
//
// This model is returned by the API when querying /api/v1/fluctuation.
//
// swagger:model FluctuationRange
type FluctuationRange struct {
	Price      float64 `json:"price" example:"23.45"`
	LowerLimit float64 `json:"lower_limit" example:"23.40"`
	UpperLimit float64 `json:"upper_limit" example:"23.50"`
}
