// Package policy holds the pure authorization rules. Every function is a
// total function of its inputs: no I/O, no state, and an unrecognized
// role always denies.
package policy

import (
	"github.com/aknip/notedesk"
)

// IsAdmin reports whether role is the admin role.
func IsAdmin(role notedesk.Role) bool {
	return role == notedesk.RoleAdmin
}

// CanRead reports whether a user with the given role may read a record
// created by creatorID. hasAssignment tells whether the user holds an
// explicit grant on the record. Admins read everything; editors and
// viewers read what they created or were assigned to.
func CanRead(role notedesk.Role, creatorID, userID int, hasAssignment bool) bool {
	switch role {
	case notedesk.RoleAdmin:
		return true
	case notedesk.RoleEditor, notedesk.RoleViewer:
		return creatorID == userID || hasAssignment
	}
	return false
}

// CanWrite reports whether a user with the given role may modify a record
// created by creatorID. Editors may write records they neither created
// nor were assigned to: write eligibility for the editor role is
// role-wide, not ownership-scoped. Viewers only write their own records.
func CanWrite(role notedesk.Role, creatorID, userID int) bool {
	switch role {
	case notedesk.RoleAdmin, notedesk.RoleEditor:
		return true
	case notedesk.RoleViewer:
		return creatorID == userID
	}
	return false
}
