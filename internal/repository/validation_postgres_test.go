package repository

import "testing"

// Two validations committed in the same instant share created_at, so the
// ordering clause needs the id tiebreaker for "first" to be stable
// across reads.
func TestValidationOrderIsDeterministic(t *testing.T) {
	if validationOrder != "ORDER BY created_at, id" {
		t.Errorf("order clause = %q, want created_at with id tiebreaker", validationOrder)
	}
}
