package errs

import "errors"

// Sentinel errors shared between the usecase and infra layers
var (
	// Mail errors
	ErrMailNotConfigured        = errors.New("mail transport not configured")
	ErrMailTransportUnavailable = errors.New("mail transport unavailable")
	ErrMailSendFailed           = errors.New("email send failed")

	// Exchange rate errors
	ErrRateUnavailable = errors.New("exchange rate unavailable")

	// Persistence errors
	ErrRecordStoreFailed = errors.New("reservation record store failed")

	// Payload errors
	ErrInvalidPayload = errors.New("invalid JSON payload")
)
