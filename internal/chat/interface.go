package chat

import (
	"context"

	"digaxy-assistant/internal/model"
)

// UseCase drives the intake conversation, one user utterance per call.
type UseCase interface {
	// Step applies one utterance to the caller's session and returns the
	// assistant's reply. It is the sole per-turn entry point: delivery
	// layers (HTTP, Telegram, CLI) must not reach into the session.
	Step(ctx context.Context, sc model.Scope, input StepInput) (StepOutput, error)

	// Reset discards everything collected in the caller's session and
	// returns the dialogue to the greeting state.
	Reset(ctx context.Context, sc model.Scope) error
}
