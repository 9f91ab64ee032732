// Package policy holds the app's authorization rules as pure predicates.
// Callers (the UI layer) evaluate these once per mutating action before
// invoking a service; repositories perform no authorization checks.
package policy

import (
	"github.com/trezcool/mazoezi/core/user"
)

// Owned is any entity scoped to a single owning user.
type Owned interface {
	OwnedBy() int
}

// CanModify reports whether actor may edit or delete obj:
// the owner always can, professors always can, nobody else ever can.
func CanModify(actor user.User, obj Owned) bool {
	return actor.IsProfessor() || actor.ID == obj.OwnedBy()
}

// CanManageSubjects reports whether actor may create, edit or delete subjects.
func CanManageSubjects(actor user.User) bool {
	return actor.IsProfessor()
}

// CanManageUsers reports whether actor may list and administer accounts.
func CanManageUsers(actor user.User) bool {
	return actor.IsProfessor()
}

// CanDeleteUser reports whether actor may delete target's account.
// Self-deletion is rejected regardless of role.
func CanDeleteUser(actor, target user.User) bool {
	return actor.IsProfessor() && actor.ID != target.ID
}
