package policy

import "crewquick/internal/models"

// Action enumerates everything the API lets a caller attempt.
type Action int

const (
	ActionPostJob Action = iota
	ActionListJobs
	ActionApplyToJob
	ActionListAllUsers
	ActionListAllJobs
	ActionViewOwnProfile
	ActionViewOwnApplications
	ActionViewOwnJobs
)

// Allowed maps (role, action) to a yes/no. Pure function; denial is terminal
// at the middleware, never an error propagated further.
func Allowed(role models.Role, action Action) bool {
	switch action {
	case ActionPostJob, ActionViewOwnJobs:
		return role == models.RoleContractor
	case ActionApplyToJob, ActionViewOwnApplications:
		return role == models.RoleWorker
	case ActionListAllUsers, ActionListAllJobs:
		return role == models.RoleAdmin
	case ActionListJobs, ActionViewOwnProfile:
		return role == models.RoleWorker || role == models.RoleContractor || role == models.RoleAdmin
	}
	return false
}

// DenialMessage is the body sent with the 403 for a denied action.
func DenialMessage(action Action) string {
	switch action {
	case ActionPostJob:
		return "Only contractors can post jobs"
	case ActionApplyToJob:
		return "Only workers can apply to jobs"
	case ActionListAllUsers, ActionListAllJobs:
		return "Admin access required"
	case ActionViewOwnApplications:
		return "Worker access required"
	case ActionViewOwnJobs:
		return "Contractor access required"
	}
	return "Insufficient permissions"
}
