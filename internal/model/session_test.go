package model

import "testing"

func TestIsComplete(t *testing.T) {
	s := NewSession("s1")
	if s.IsComplete() {
		t.Fatal("fresh session must not be complete")
	}

	s.Fields.PickupLocation = "123 Main St, Springfield"
	s.Fields.DropoffLocation = "456 Oak Ave, Shelbyville"
	s.Fields.ItemDescription = "three boxes and a sofa"
	if s.IsComplete() {
		t.Fatal("session without vehicle must not be complete")
	}

	s.Fields.VehicleType = "Van"
	if !s.IsComplete() {
		t.Fatal("session with all four fields must be complete")
	}
}

func TestReset(t *testing.T) {
	s := NewSession("s1")
	s.Advance(StateConfirmEstimate)
	cost := 199.0
	s.Fields.ServiceType = "Home Move"
	s.Fields.EstimatedCost = &cost

	s.Reset()

	if s.State != StateGreeting {
		t.Errorf("state after reset = %s, want %s", s.State, StateGreeting)
	}
	if s.Fields != (Fields{}) {
		t.Errorf("fields after reset = %+v, want zero value", s.Fields)
	}
	if s.ID != "s1" {
		t.Errorf("reset must keep the session ID, got %q", s.ID)
	}
}
