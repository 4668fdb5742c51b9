package auth

import "github.com/pyar/jobboard/internal/domain/model"

// CanModifyJob is the ownership guard for edit/delete: only the creating
// user may mutate a job. Moderators do not get edit rights through this
// path; takedowns go through CanModerate instead.
func CanModifyJob(s *Session, job *model.Job) bool {
	if s == nil || job == nil || s.IsGuest() {
		return false
	}
	return s.UserID == job.OwnerID
}

// CanModerate reports whether the session may inactivate jobs
// regardless of ownership.
func CanModerate(s *Session) bool {
	return s != nil && s.Role == RoleModerator
}
