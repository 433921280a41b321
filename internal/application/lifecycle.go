// Package application contains the business logic for the dual-party
// application lifecycle.
//
// Visibility state is derived from the two soft-delete flags:
//
//	Active ──seeker delete──► SeekerHidden ──employer delete──► Destroyed
//	   │                                                            ▲
//	   └──employer delete──► EmployerHidden ──seeker delete─────────┘
//
// Each flag is owned by one party and only ever transitions false→true.
// Destroyed is not stored: the row is hard-deleted inside the same operation
// that flips the second flag, so "both flags true" is never observable.
package application

import "nichenest/board-service/internal/model"

// State is the derived visibility state of an application.
type State string

const (
	StateActive         State = "ACTIVE"
	StateSeekerHidden   State = "SEEKER_HIDDEN"
	StateEmployerHidden State = "EMPLOYER_HIDDEN"
	StateDestroyed      State = "DESTROYED"
)

// StateOf derives the visibility state from the two delete flags.
func StateOf(a *model.Application) State {
	switch {
	case a.DeletedByJobSeeker && a.DeletedByEmployer:
		return StateDestroyed
	case a.DeletedByJobSeeker:
		return StateSeekerHidden
	case a.DeletedByEmployer:
		return StateEmployerHidden
	default:
		return StateActive
	}
}

// VisibleTo reports whether the given party may still see the application,
// i.e. that party's own delete flag is false. The counterparty's flag is
// irrelevant to visibility.
func VisibleTo(a *model.Application, role model.Role) bool {
	switch role {
	case model.RoleJobSeeker:
		return !a.DeletedByJobSeeker
	case model.RoleEmployer:
		return !a.DeletedByEmployer
	}
	return false
}

// OwnsDeleteFlag reports whether role is one of the two parties that may flip
// a delete flag. Any other role's delete request is a recorded no-op.
func OwnsDeleteFlag(role model.Role) bool {
	return role == model.RoleJobSeeker || role == model.RoleEmployer
}
