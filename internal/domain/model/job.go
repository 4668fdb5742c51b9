// Package model defines the core data types and structures used throughout the job board.
package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Job represents a job posting with all its metadata and status information.
type Job struct {
	ID          string    `json:"id"                   db:"id"`
	Title       string    `json:"title"                db:"title"`
	Description string    `json:"description"          db:"description"`
	Location    string    `json:"location"             db:"location"`
	Email       string    `json:"email"                db:"email"`
	Seniority   string    `json:"seniority"            db:"seniority"`
	RemoteWork  bool      `json:"remote_work"          db:"remote_work"`
	Tags        []string  `json:"tags"                 db:"tags"`
	CompanyID   *string   `json:"company_id,omitempty" db:"company_id"`
	OwnerID     string    `json:"owner_id"             db:"owner_id"`
	IsActive    bool      `json:"is_active"            db:"is_active"`
	CreatedAt   time.Time `json:"created_at"           db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"           db:"updated_at"`
}

// JobFeedItem is the syndication-feed projection of a job: the posting plus
// the display fields of its company, empty strings when the job has none.
type JobFeedItem struct {
	Job
	CompanyName string `json:"company_name" db:"company_name"`
	CompanyURL  string `json:"company_url"  db:"company_url"`
}

// CreateJobRequest represents a request to create a new job posting.
// Tags arrive normalized (see NormalizeTags) and Description arrives sanitized;
// both are the service's responsibility before the request reaches a repository.
type CreateJobRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Email       string   `json:"email"`
	Seniority   string   `json:"seniority"`
	RemoteWork  bool     `json:"remote_work"`
	Tags        []string `json:"tags,omitempty"`
	CompanyID   *string  `json:"company_id,omitempty"`
	OwnerID     string   `json:"owner_id"`
}

// Validate validates the CreateJobRequest fields.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("location is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email is invalid")
	}
	if r.OwnerID == "" {
		return errors.New("owner id is required")
	}
	return nil
}

// UpdateJobRequest represents a partial update of a job posting.
// Nil fields are left untouched.
type UpdateJobRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Seniority   *string   `json:"seniority,omitempty"`
	RemoteWork  *bool     `json:"remote_work,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	CompanyID   *string   `json:"company_id,omitempty"`
}

// Validate validates the UpdateJobRequest fields.
func (r *UpdateJobRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		return errors.New("description cannot be empty")
	}
	if r.Location != nil && strings.TrimSpace(*r.Location) == "" {
		return errors.New("location cannot be empty")
	}
	if r.Email != nil {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			return errors.New("email is invalid")
		}
	}
	return nil
}

// IsEmpty reports whether the update carries no changes.
func (r *UpdateJobRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Location == nil &&
		r.Email == nil && r.Seniority == nil && r.RemoteWork == nil &&
		r.Tags == nil && r.CompanyID == nil
}
