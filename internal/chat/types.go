package chat

// StepInput is one user utterance applied to a session. SessionID may be
// empty on the first turn; the engine then mints a new session and reports
// its ID in the output.
type StepInput struct {
	SessionID string
	Message   string
}

// StepOutput is the assistant's reply for one turn.
type StepOutput struct {
	SessionID string   `json:"session_id"`
	Reply     string   `json:"reply"`
	FollowUps []string `json:"follow_up,omitempty"`
	State     string   `json:"state"`
	Complete  bool     `json:"complete"`
}
