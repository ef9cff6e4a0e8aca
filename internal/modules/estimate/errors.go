package estimate

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not_found")
	ErrForbidden         = errors.New("forbidden")
	ErrStaleDraft        = errors.New("stale_draft")
	ErrMailerUnavailable = errors.New("mailer unavailable")
)
