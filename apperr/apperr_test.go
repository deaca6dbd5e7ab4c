package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		err            error
		isValidation   bool
		isConflict     bool
		isNotFound     bool
		isUnauthorized bool
	}{
		{Validationf("bad input"), true, false, false, false},
		{Conflictf("already taken"), false, true, false, false},
		{NotFoundf("no such id"), false, false, true, false},
		{Unauthorizedf("invalid credentials"), false, false, false, true},
		{errors.New("plain"), false, false, false, false},
		{nil, false, false, false, false},
	}

	for _, tt := range tests {
		if got := IsValidation(tt.err); got != tt.isValidation {
			t.Errorf("IsValidation(%v) = %v, want %v", tt.err, got, tt.isValidation)
		}
		if got := IsConflict(tt.err); got != tt.isConflict {
			t.Errorf("IsConflict(%v) = %v, want %v", tt.err, got, tt.isConflict)
		}
		if got := IsNotFound(tt.err); got != tt.isNotFound {
			t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.isNotFound)
		}
		if got := IsUnauthorized(tt.err); got != tt.isUnauthorized {
			t.Errorf("IsUnauthorized(%v) = %v, want %v", tt.err, got, tt.isUnauthorized)
		}
	}
}

func TestMessage(t *testing.T) {
	err := Conflictf("slot %s on %s is taken", "recess", "2025-01-06")
	if err.Error() != "slot recess on 2025-01-06 is taken" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWrappedKindSurvives(t *testing.T) {
	err := fmt.Errorf("returning rental: %w", Conflictf("rental already returned"))
	if !IsConflict(err) {
		t.Error("conflict kind should survive wrapping")
	}
}
