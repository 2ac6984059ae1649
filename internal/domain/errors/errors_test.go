package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsMatchThroughWrap(t *testing.T) {
	wrapped := fmt.Errorf("game ABCD1234: %w", ErrGameNotFound)
	if !errors.Is(wrapped, ErrGameNotFound) {
		t.Error("wrapped ErrGameNotFound should match with errors.Is")
	}
	wrapped = fmt.Errorf("game ABCD1234 has 2 participants: %w", ErrInsufficientParticipants)
	if !errors.Is(wrapped, ErrInsufficientParticipants) {
		t.Error("wrapped ErrInsufficientParticipants should match with errors.Is")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrGameNotFound,
		ErrDuplicateEmail,
		ErrAlreadyAssigned,
		ErrInsufficientParticipants,
		ErrValidation,
		ErrGameExists,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
