package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Company represents a company that can own job postings.
// A positive Rank makes its active jobs eligible for the sponsored partition.
type Company struct {
	ID         string    `json:"id"          db:"id"`
	OwnerID    string    `json:"owner_id"    db:"owner_id"`
	OwnerEmail string    `json:"owner_email" db:"owner_email"`
	Name       string    `json:"name"        db:"name"`
	URL        string    `json:"url"         db:"url"`
	Rank       int       `json:"rank"        db:"rank"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// Sponsored reports whether the company is in the sponsored tier.
func (c *Company) Sponsored() bool {
	return c.Rank > 0
}

// CreateCompanyRequest represents a request to register a company.
type CreateCompanyRequest struct {
	OwnerID    string `json:"owner_id"`
	OwnerEmail string `json:"owner_email"`
	Name       string `json:"name"`
	URL        string `json:"url,omitempty"`
	Rank       int    `json:"rank,omitempty"`
}

// Validate validates the CreateCompanyRequest fields.
func (r *CreateCompanyRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if r.OwnerID == "" {
		return errors.New("owner id is required")
	}
	if strings.TrimSpace(r.OwnerEmail) != "" {
		if _, err := mail.ParseAddress(r.OwnerEmail); err != nil {
			return errors.New("owner email is invalid")
		}
	}
	if r.Rank < 0 {
		return errors.New("rank must be >= 0")
	}
	return nil
}
