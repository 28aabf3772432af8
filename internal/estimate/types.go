package estimate

// Result is the outcome of a single cost estimation. Values are final once
// returned; callers copy what they need into their own state.
type Result struct {
	DistanceKm   float64
	LaborMinutes int
	DistanceCost float64
	LaborCost    float64
	TotalCost    float64

	// ViaOracle reports whether the numbers came from the language model
	// or from the deterministic fallback.
	ViaOracle bool
}
