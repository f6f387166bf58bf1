package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidResume       = errors.New("invalid resume upload")
	ErrAdviceNotConfigured = errors.New("AI advice not configured")
	ErrAdviceUnavailable   = errors.New("AI advice unavailable")
	ErrInternal            = errors.New("internal error")
)
