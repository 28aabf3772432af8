package estimate

import (
	"context"
	"errors"
	"math"
	"testing"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockOracle struct {
	text      string
	err       error
	gotPrompt string
}

func (m *mockOracle) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.gotPrompt = prompt
	return m.text, m.err
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResolveRateDefaultsToVan(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantBase float64
	}{
		{"van", "van", 77.00},
		{"VAN", "van", 77.00},
		{"Pickup", "pickup", 42.92},
		{"minibox", "minibox", 144.51},
		{"BigBox", "bigbox", 230.00},
		{"helicopter", "van", 77.00},
		{"", "van", 77.00},
		{"  Van  ", "van", 77.00},
	}
	for _, tt := range tests {
		name, rate := ResolveRate(tt.in)
		if name != tt.wantName {
			t.Errorf("ResolveRate(%q) name = %q, want %q", tt.in, name, tt.wantName)
		}
		if !almostEqual(rate.BaseFare, tt.wantBase) {
			t.Errorf("ResolveRate(%q) base = %v, want %v", tt.in, rate.BaseFare, tt.wantBase)
		}
	}
}

func TestFallbackTiers(t *testing.T) {
	// No oracle configured: every estimate takes the deterministic path.
	svc := New(&mockLogger{}, nil)
	ctx := context.Background()

	tests := []struct {
		item         string
		wantDistance float64
		wantLabor    int
	}{
		{"moving my whole apartment", 12, 60},
		{"a studio worth of stuff", 12, 60},
		{"a set of furniture", 10, 45},
		{"one box of books", 8, 25},
		{"a small package", 8, 25},
		{"everything in the garage", 10, 40},
		// Precedence: apartment wins over furniture and box.
		{"apartment furniture and boxes", 12, 60},
	}

	for _, tt := range tests {
		res, err := svc.Estimate(ctx, "A", "B", "van", tt.item)
		if err != nil {
			t.Fatalf("Estimate(%q) error: %v", tt.item, err)
		}
		if res.ViaOracle {
			t.Errorf("Estimate(%q) claimed oracle success without an oracle", tt.item)
		}
		if res.DistanceKm != tt.wantDistance || res.LaborMinutes != tt.wantLabor {
			t.Errorf("Estimate(%q) = (%.0f km, %d min), want (%.0f, %d)",
				tt.item, res.DistanceKm, res.LaborMinutes, tt.wantDistance, tt.wantLabor)
		}
	}
}

func TestFallbackIsPureFunctionOfItemAndRates(t *testing.T) {
	svc := New(&mockLogger{}, nil)
	ctx := context.Background()

	a, _ := svc.Estimate(ctx, "123 Main St", "456 Oak Ave", "van", "two bedroom apartment")
	b, _ := svc.Estimate(ctx, "somewhere else entirely", "another town", "van", "two bedroom apartment")

	if a != b {
		t.Fatalf("fallback depends on pickup/dropoff: %+v vs %+v", a, b)
	}

	_, rate := ResolveRate("van")
	wantTotal := rate.BaseFare + 12*0.8 + 60*rate.LaborPerMinute
	if !almostEqual(a.TotalCost, wantTotal) {
		t.Errorf("apartment total = %v, want %v", a.TotalCost, wantTotal)
	}
}

func TestFallbackCostIdentity(t *testing.T) {
	svc := New(&mockLogger{}, nil)
	ctx := context.Background()

	for _, vehicle := range Vehicles() {
		_, rate := ResolveRate(vehicle)
		res, _ := svc.Estimate(ctx, "A", "B", vehicle, "desk and chairs")
		if !almostEqual(res.TotalCost, rate.BaseFare+res.DistanceCost+res.LaborCost) {
			t.Errorf("%s: total %v != base %v + distance %v + labor %v",
				vehicle, res.TotalCost, rate.BaseFare, res.DistanceCost, res.LaborCost)
		}
	}
}

func TestEstimateViaOracle(t *testing.T) {
	oracle := &mockOracle{
		text: "Sure! Here is the estimate:\n" +
			`{"distance_km": 14.5, "labor_minutes": 50, "distance_cost": 11.6, "labor_cost": 101.0, "total_cost": 189.6}` +
			"\nLet me know if you need anything else.",
	}
	svc := New(&mockLogger{}, oracle)

	res, err := svc.Estimate(context.Background(), "123 Main St", "456 Oak Ave", "van", "sofa and table")
	if err != nil {
		t.Fatalf("Estimate error: %v", err)
	}
	if !res.ViaOracle {
		t.Fatal("expected oracle path")
	}
	if !almostEqual(res.DistanceKm, 14.5) || res.LaborMinutes != 50 {
		t.Errorf("parsed (%v km, %d min), want (14.5, 50)", res.DistanceKm, res.LaborMinutes)
	}
	if !almostEqual(res.TotalCost, 189.6) {
		t.Errorf("total = %v, want 189.6", res.TotalCost)
	}
	if oracle.gotPrompt == "" {
		t.Error("oracle was never prompted")
	}
}

func TestEstimateViaOracleDefaultsMissingFields(t *testing.T) {
	// Only distance present: every other field falls back to its own default.
	oracle := &mockOracle{text: `{"distance_km": 3}`}
	svc := New(&mockLogger{}, oracle)

	res, err := svc.Estimate(context.Background(), "A", "B", "van", "a lamp")
	if err != nil {
		t.Fatalf("Estimate error: %v", err)
	}
	if !res.ViaOracle {
		t.Fatal("expected oracle path")
	}

	_, rate := ResolveRate("van")
	if !almostEqual(res.DistanceKm, 3) {
		t.Errorf("distance = %v, want 3", res.DistanceKm)
	}
	if res.LaborMinutes != 45 || !almostEqual(res.DistanceCost, 8.0) || !almostEqual(res.LaborCost, 73.0) {
		t.Errorf("defaults not applied: %+v", res)
	}
	if !almostEqual(res.TotalCost, rate.BaseFare+81.0) {
		t.Errorf("total = %v, want %v", res.TotalCost, rate.BaseFare+81.0)
	}
	// The all-defaults object still satisfies total = base + distance + labor.
	if !almostEqual(res.TotalCost, rate.BaseFare+res.DistanceCost+res.LaborCost) {
		t.Errorf("oracle-path cost identity broken: %+v", res)
	}
}

func TestEstimateOracleErrorFallsBack(t *testing.T) {
	oracle := &mockOracle{err: errors.New("connection refused")}
	svc := New(&mockLogger{}, oracle)

	res, err := svc.Estimate(context.Background(), "A", "B", "van", "one box")
	if err != nil {
		t.Fatalf("Estimate must not surface oracle errors, got: %v", err)
	}
	if res.ViaOracle {
		t.Fatal("expected fallback path")
	}
	if res.DistanceKm != 8 || res.LaborMinutes != 25 {
		t.Errorf("fallback tier = (%v, %d), want (8, 25)", res.DistanceKm, res.LaborMinutes)
	}
}

func TestEstimateOracleGarbageFallsBack(t *testing.T) {
	tests := []string{
		"I cannot help with that.",
		"{broken json",
		`{"distance_km": "very far"}`,
	}
	for _, text := range tests {
		svc := New(&mockLogger{}, &mockOracle{text: text})
		res, err := svc.Estimate(context.Background(), "A", "B", "van", "a desk")
		if err != nil {
			t.Fatalf("Estimate(%q) error: %v", text, err)
		}
		if res.ViaOracle {
			t.Errorf("reply %q should have routed to fallback", text)
		}
	}
}

func TestEstimateUnknownVehicleUsesVanRates(t *testing.T) {
	svc := New(&mockLogger{}, nil)

	unknown, _ := svc.Estimate(context.Background(), "A", "B", "spaceship", "furniture set")
	van, _ := svc.Estimate(context.Background(), "A", "B", "Van", "furniture set")

	if unknown != van {
		t.Fatalf("unknown vehicle result %+v differs from van result %+v", unknown, van)
	}
}
