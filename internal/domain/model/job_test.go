package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateJobRequest() CreateJobRequest {
	return CreateJobRequest{
		Title:       "Backend Developer",
		Description: "<p>Build services</p>",
		Location:    "Buenos Aires",
		Email:       "jobs@example.com",
		OwnerID:     "user-1",
	}
}

func TestCreateJobRequest_Validate(t *testing.T) {
	req := validCreateJobRequest()
	require.NoError(t, req.Validate())

	missingTitle := validCreateJobRequest()
	missingTitle.Title = "  "
	assert.Error(t, missingTitle.Validate())

	badEmail := validCreateJobRequest()
	badEmail.Email = "not-an-address"
	assert.Error(t, badEmail.Validate())

	noOwner := validCreateJobRequest()
	noOwner.OwnerID = ""
	assert.Error(t, noOwner.Validate())
}

func TestUpdateJobRequest_Validate(t *testing.T) {
	empty := ""
	bad := UpdateJobRequest{Title: &empty}
	assert.Error(t, bad.Validate())

	email := "nope"
	badMail := UpdateJobRequest{Email: &email}
	assert.Error(t, badMail.Validate())

	title := "New title"
	ok := UpdateJobRequest{Title: &title}
	assert.NoError(t, ok.Validate())
	assert.False(t, ok.IsEmpty())
	assert.True(t, (&UpdateJobRequest{}).IsEmpty())
}

func TestCompany_Sponsored(t *testing.T) {
	assert.True(t, (&Company{Rank: 1}).Sponsored())
	assert.False(t, (&Company{Rank: 0}).Sponsored())
}

func TestInactivateJobRequest_Validate(t *testing.T) {
	assert.Error(t, (&InactivateJobRequest{}).Validate())
	assert.NoError(t, (&InactivateJobRequest{Reason: "spam"}).Validate())
}
