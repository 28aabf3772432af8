package model

// Scope carries the caller identity attached to a request.
type Scope struct {
	SessionID string
	UserID    string
	Username  string
}
