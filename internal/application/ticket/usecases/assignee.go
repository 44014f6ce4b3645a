package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/shared/errors"
)

// normalizeAssignee treats a missing or non-positive id as unassigned, the
// way an empty select box arrives from a form.
func normalizeAssignee(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	v := *id
	return &v
}

func ensureAssignable(ctx context.Context, users UserLookup, id *int64) error {
	if id == nil {
		return nil
	}
	u, err := users.GetByID(ctx, *id)
	if err != nil {
		return fmt.Errorf("failed to look up assignee: %w", err)
	}
	if u == nil || !u.IsStaffMember() {
		return errors.NewValidationError("Assignee not found")
	}
	return nil
}
