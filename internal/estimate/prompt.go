package estimate

import "fmt"

// estimatePromptTemplate instructs the model to reply with a single strict
// JSON object. The surrounding code tolerates prose around the object, but
// asking for bare JSON keeps extraction cheap.
const estimatePromptTemplate = `You are a cost estimation assistant. Estimate:
1. Distance in km between: %s and %s
2. Labor time in minutes for: %s
3. Calculate: Base $%.2f + Distance Cost + Labor Cost ($%.2f/min)

Distance cost: ~$0.8 per km
Labor: estimate 20-120 minutes based on item complexity

Respond ONLY with JSON:
{"distance_km": 10, "labor_minutes": 45, "distance_cost": 8.0, "labor_cost": 73.0, "total_cost": 159.0}`

// buildEstimatePrompt fills the instruction template for one estimation call.
func buildEstimatePrompt(pickup, dropoff, itemDescription string, rate Rate) string {
	return fmt.Sprintf(estimatePromptTemplate,
		pickup, dropoff, itemDescription, rate.BaseFare, rate.LaborPerMinute)
}
