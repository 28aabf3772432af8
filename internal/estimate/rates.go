package estimate

import "strings"

// Rate holds the pricing parameters for one vehicle category.
type Rate struct {
	BaseFare       float64
	LaborPerMinute float64
}

// DefaultVehicle is the category unknown vehicle names resolve to.
const DefaultVehicle = "van"

// vehicleOrder is the menu/matching order for vehicle categories.
var vehicleOrder = []string{"pickup", "van", "minibox", "bigbox"}

var vehicleRates = map[string]Rate{
	"pickup":  {BaseFare: 42.92, LaborPerMinute: 1.62},
	"van":     {BaseFare: 77.00, LaborPerMinute: 2.02},
	"minibox": {BaseFare: 144.51, LaborPerMinute: 2.30},
	"bigbox":  {BaseFare: 230.00, LaborPerMinute: 4.99},
}

// Vehicles returns the supported vehicle categories in menu order.
func Vehicles() []string {
	out := make([]string, len(vehicleOrder))
	copy(out, vehicleOrder)
	return out
}

// ResolveRate returns the rate table entry for the given vehicle name.
// Lookup is case-insensitive; unknown or empty names resolve to the default
// category so that estimation never fails on user input. The resolved
// canonical category name is returned alongside the rate.
func ResolveRate(vehicleType string) (string, Rate) {
	v := strings.ToLower(strings.TrimSpace(vehicleType))
	if _, ok := vehicleRates[v]; !ok {
		v = DefaultVehicle
	}
	return v, vehicleRates[v]
}
