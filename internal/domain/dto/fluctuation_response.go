package dto

// FluctuationResponse represents the JSON structure returned by the
// GET /api/v1/fluctuation endpoint.
//
// Fields match the API contract and may differ from internal domain models.
// This ensures loose coupling between the API surface and business logic.
type FluctuationResponse struct {
	Price      float64 `json:"price" example:"23.45"`        // Validated reference price
	LowerLimit float64 `json:"lower_limit" example:"23.40"`  // Lowest price reachable in the session
	UpperLimit float64 `json:"upper_limit" example:"23.50"`  // Highest price reachable in the session
}
