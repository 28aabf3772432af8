package model

// StateTag identifies one state of the intake dialogue.
type StateTag string

// Dialogue states in happy-path order. Booking is terminal;
// ConfirmEstimate can loop back to Greeting on cancellation.
const (
	StateGreeting        StateTag = "greeting"
	StateServiceType     StateTag = "service_type"
	StateItemDetails     StateTag = "item_details"
	StatePickupLocation  StateTag = "pickup_location"
	StateDropoffLocation StateTag = "dropoff_location"
	StateVehicleType     StateTag = "vehicle_type"
	StateConfirmEstimate StateTag = "confirm_estimate"
	StateBooking         StateTag = "booking"
)

// Fields holds everything collected over one conversation. String fields are
// unset while empty. DistanceKm and EstimatedCost are unset while nil and are
// written exactly once, during the vehicle selection transition.
type Fields struct {
	ServiceType     string   `json:"service_type,omitempty"`
	ItemDescription string   `json:"item_description,omitempty"`
	PickupLocation  string   `json:"pickup_location,omitempty"`
	DropoffLocation string   `json:"dropoff_location,omitempty"`
	VehicleType     string   `json:"vehicle_type,omitempty"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
	EstimatedCost   *float64 `json:"estimated_cost,omitempty"`
}

// Session is one end-to-end conversation, from greeting to booking or
// abandonment. A session is owned by a single caller at a time; the store
// hands the same instance back on every turn.
type Session struct {
	ID     string   `json:"id"`
	State  StateTag `json:"state"`
	Fields Fields   `json:"fields"`
}

// NewSession creates a session in the initial shape.
func NewSession(id string) *Session {
	return &Session{ID: id, State: StateGreeting}
}

// Advance moves the dialogue to the given state.
func (s *Session) Advance(tag StateTag) {
	s.State = tag
}

// Reset returns the session to its initial shape, keeping its identity.
func (s *Session) Reset() {
	s.State = StateGreeting
	s.Fields = Fields{}
}

// IsComplete reports whether every field needed for an estimate is present.
// It is a pure query for host-side callers; the state machine tracks required
// fields through its transitions and never consults it.
func (s *Session) IsComplete() bool {
	return s.Fields.PickupLocation != "" &&
		s.Fields.DropoffLocation != "" &&
		s.Fields.VehicleType != "" &&
		s.Fields.ItemDescription != ""
}
