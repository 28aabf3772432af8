package estimate

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	pkgLog "digaxy-assistant/pkg/log"
)

const perKmCost = 0.8

// Per-field defaults applied when the oracle's JSON omits a value.
const (
	defaultDistanceKm    = 10.0
	defaultLaborMinutes  = 45
	defaultDistanceCost  = 8.0
	defaultLaborCost     = 73.0
	defaultTotalCostOver = 81.0 // added to the base fare
)

// jsonObjectPattern finds the first balanced, non-nested brace-delimited
// object in free text. The oracle is asked for bare JSON but tends to wrap
// it in prose or code fences.
var jsonObjectPattern = regexp.MustCompile(`\{[^{}]*\}`)

type estimator struct {
	l      pkgLog.Logger
	oracle Oracle
}

// oracleEstimate mirrors the JSON object the oracle is instructed to return.
// Pointer fields let each missing value default independently.
type oracleEstimate struct {
	DistanceKm   *float64 `json:"distance_km"`
	LaborMinutes *float64 `json:"labor_minutes"`
	DistanceCost *float64 `json:"distance_cost"`
	LaborCost    *float64 `json:"labor_cost"`
	TotalCost    *float64 `json:"total_cost"`
}

// Estimate computes distance, labor time, and itemized cost for a move.
// The oracle path is attempted first; any failure there (call, parse, empty
// output) abandons it wholesale and the deterministic fallback runs instead.
func (e *estimator) Estimate(ctx context.Context, pickup, dropoff, vehicleType, itemDescription string) (Result, error) {
	_, rate := ResolveRate(vehicleType)

	if e.oracle != nil {
		if res, ok := e.estimateViaOracle(ctx, pickup, dropoff, itemDescription, rate); ok {
			return res, nil
		}
	}

	return e.fallback(itemDescription, rate), nil
}

func (e *estimator) estimateViaOracle(ctx context.Context, pickup, dropoff, itemDescription string, rate Rate) (Result, bool) {
	prompt := buildEstimatePrompt(pickup, dropoff, itemDescription, rate)

	text, err := e.oracle.GenerateText(ctx, prompt)
	if err != nil {
		e.l.Warnf(ctx, "estimate: oracle unavailable, using fallback: %v", err)
		return Result{}, false
	}

	raw := jsonObjectPattern.FindString(text)
	if raw == "" {
		e.l.Warnf(ctx, "estimate: no JSON object in oracle reply, using fallback. Raw=%q", text)
		return Result{}, false
	}

	var parsed oracleEstimate
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		e.l.Warnf(ctx, "estimate: malformed oracle JSON, using fallback: %v. Raw=%q", err, raw)
		return Result{}, false
	}

	res := Result{
		DistanceKm:   defaultDistanceKm,
		LaborMinutes: defaultLaborMinutes,
		DistanceCost: defaultDistanceCost,
		LaborCost:    defaultLaborCost,
		TotalCost:    rate.BaseFare + defaultTotalCostOver,
		ViaOracle:    true,
	}
	if parsed.DistanceKm != nil {
		res.DistanceKm = *parsed.DistanceKm
	}
	if parsed.LaborMinutes != nil {
		res.LaborMinutes = int(*parsed.LaborMinutes)
	}
	if parsed.DistanceCost != nil {
		res.DistanceCost = *parsed.DistanceCost
	}
	if parsed.LaborCost != nil {
		res.LaborCost = *parsed.LaborCost
	}
	if parsed.TotalCost != nil {
		res.TotalCost = *parsed.TotalCost
	}
	return res, true
}

// fallback is a pure function of (itemDescription, rate) and must stay that
// way: it is the guaranteed path when the oracle is missing or misbehaves.
func (e *estimator) fallback(itemDescription string, rate Rate) Result {
	item := strings.ToLower(itemDescription)

	var distance float64
	var labor int
	switch {
	case strings.Contains(item, "apartment") || strings.Contains(item, "studio"):
		distance, labor = 12, 60
	case strings.Contains(item, "furniture"):
		distance, labor = 10, 45
	case strings.Contains(item, "box") || strings.Contains(item, "small"):
		distance, labor = 8, 25
	default:
		distance, labor = 10, 40
	}

	distanceCost := distance * perKmCost
	laborCost := float64(labor) * rate.LaborPerMinute

	return Result{
		DistanceKm:   distance,
		LaborMinutes: labor,
		DistanceCost: distanceCost,
		LaborCost:    laborCost,
		TotalCost:    rate.BaseFare + distanceCost + laborCost,
		ViaOracle:    false,
	}
}
