package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from clients.
	DefaultErrorMessage = "Internal server error"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500
)
