package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyar/jobboard/internal/domain/model"
)

func TestCanModifyJob(t *testing.T) {
	job := &model.Job{ID: "j1", OwnerID: "alice"}

	owner := &Session{UserID: "alice", Role: RoleUser}
	other := &Session{UserID: "bob", Role: RoleUser}
	moderator := &Session{UserID: "mod", Role: RoleModerator}
	guest := &Session{UserID: "alice", Role: RoleGuest}

	assert.True(t, CanModifyJob(owner, job))
	assert.False(t, CanModifyJob(other, job))
	assert.False(t, CanModifyJob(moderator, job), "moderators do not get edit rights")
	assert.False(t, CanModifyJob(guest, job))
	assert.False(t, CanModifyJob(nil, job))
	assert.False(t, CanModifyJob(owner, nil))
}

func TestCanModerate(t *testing.T) {
	assert.True(t, CanModerate(&Session{Role: RoleModerator}))
	assert.False(t, CanModerate(&Session{Role: RoleUser}))
	assert.False(t, CanModerate(nil))
}
