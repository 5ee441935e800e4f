package recruiting

import "errors"

var (
	ErrTenantNotFound    = errors.New("tenant not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrJobNotFound       = errors.New("job description not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrAlreadyAnswered   = errors.New("answers already submitted")
)
