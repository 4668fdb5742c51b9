package model

import (
	"errors"
	"strings"
	"time"
)

// JobInactivation is the audit record created when a moderator takes a job down.
// Records are insert-only and never updated.
type JobInactivation struct {
	ID        string    `json:"id"         db:"id"`
	JobID     string    `json:"job_id"     db:"job_id"`
	Reason    string    `json:"reason"     db:"reason"`
	Comment   string    `json:"comment"    db:"comment"`
	SendEmail bool      `json:"send_email" db:"send_email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// InactivateJobRequest represents a moderator's request to inactivate a job.
type InactivateJobRequest struct {
	Reason    string `json:"reason"`
	Comment   string `json:"comment,omitempty"`
	SendEmail bool   `json:"send_email,omitempty"`
}

// Validate validates the InactivateJobRequest fields.
func (r *InactivateJobRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return errors.New("reason is required")
	}
	return nil
}
