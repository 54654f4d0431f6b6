// Package testutil holds store test suites shared by the inmem and bolt
// implementations. Each suite expects freshly created, empty stores that
// share one backing database, so cascades can be observed across them.
package testutil

import (
	"github.com/aknip/notedesk"
)

type Stores struct {
	Users       notedesk.UserStore
	Persons     notedesk.PersonStore
	Notes       notedesk.NoteStore
	Assignments notedesk.AssignmentStore
	Visibility  notedesk.VisibilityStore
}
