package apperror

import (
	"errors"
	"fmt"
)

// Sentinels for the error classes the services distinguish. Controllers map
// them to HTTP statuses; services recover from ErrIndexUnavailable locally
// and never surface it on read paths.
var (
	ErrInput            = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrIndexUnavailable = errors.New("search index unavailable")
)

func Inputf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInput, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func IsInput(err error) bool    { return errors.Is(err, ErrInput) }
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
