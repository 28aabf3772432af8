package usecase

import (
	"digaxy-assistant/internal/chat/repository"
	"digaxy-assistant/internal/estimate"
	pkgLog "digaxy-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	estimator  estimate.Service
	sessions   repository.SessionRepository
	bookingURL string
}

// New creates a new chat UseCase instance. bookingURL is emitted verbatim in
// the booking confirmation; the assistant never performs the booking itself.
func New(
	l pkgLog.Logger,
	estimator estimate.Service,
	sessions repository.SessionRepository,
	bookingURL string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		estimator:  estimator,
		sessions:   sessions,
		bookingURL: bookingURL,
	}
}
