package bplus

import "github.com/cockroachdb/errors"

var (
	ErrInvalidCapacity    = errors.New("bplus: capacity must be an even integer >= 2")
	ErrMalformedNode      = errors.New("bplus: malformed node")
	ErrInvariantViolation = errors.New("bplus: tree invariant violated")
)

func validateCapacity(capacity int) error {
	if capacity < MinCapacity || capacity%2 != 0 {
		return errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return nil
}
