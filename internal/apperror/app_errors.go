package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrGameIsNotStarted    = errors.New("game is not started")
	ErrNoActiveMatch       = errors.New("no active match")
	ErrMatchNotFound       = errors.New("match not found")
	ErrPersistenceDisabled = errors.New("match persistence is disabled")
)
