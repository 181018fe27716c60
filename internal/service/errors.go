package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyIdentifier  = errors.New("identifier must not be empty")
	ErrInvalidDecision  = errors.New("decision must be like or skip")
	ErrLobbyNotFound    = errors.New("lobby not found")
	ErrLobbyInactive    = errors.New("lobby is no longer active")
	ErrNotMember        = errors.New("user is not a member of this lobby")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeErr maps storage failures onto the retryable ErrStoreUnavailable
// sentinel while letting domain sentinels pass through untouched. The
// transaction has already rolled back by the time this runs, so a mapped
// error never hides a half-applied state change.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrLobbyNotFound),
		errors.Is(err, ErrLobbyInactive),
		errors.Is(err, ErrNotMember):
		return err
	}
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}
