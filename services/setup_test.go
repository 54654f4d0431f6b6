package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aknip/notedesk"
	"github.com/aknip/notedesk/inmem"
)

type testEnv struct {
	users       notedesk.UserStore
	persons     notedesk.PersonStore
	notes       notedesk.NoteStore
	assignments notedesk.AssignmentStore
	visibility  notedesk.VisibilityStore
}

func newTestEnv() testEnv {
	store := inmem.NewStore()
	return testEnv{
		users:       &inmem.UserStore{Store: store},
		persons:     &inmem.PersonStore{Store: store},
		notes:       &inmem.NoteStore{Store: store},
		assignments: &inmem.AssignmentStore{Store: store},
		visibility:  &inmem.VisibilityStore{Store: store},
	}
}

// loadScenario inserts the reference dataset: an admin, an editor and a
// viewer; five persons (two created by the admin, two by the editor, one
// by the viewer); four notes per person created by the person's creator;
// and a single note assignment sharing note 1 (on a person of the admin)
// with the viewer.
func loadScenario(t *testing.T, env testEnv) {
	users := []notedesk.User{
		{ID: 1, Username: "anna.schmitt", Role: notedesk.RoleAdmin},
		{ID: 2, Username: "bernd.mueller", Role: notedesk.RoleEditor},
		{ID: 3, Username: "clara.schulz", Role: notedesk.RoleViewer},
	}
	for i := range users {
		require.NoError(t, env.users.Upsert(&users[i]))
	}

	persons := []notedesk.Person{
		{ID: 1, FirstName: "Max", LastName: "Beispiel", CreatedBy: 1},
		{ID: 2, FirstName: "Eva", LastName: "Team", CreatedBy: 1},
		{ID: 3, FirstName: "Karl", LastName: "Offen", CreatedBy: 2},
		{ID: 4, FirstName: "Lisa", LastName: "Privat", CreatedBy: 2},
		{ID: 5, FirstName: "Olaf", LastName: "Gemein", CreatedBy: 3},
	}
	for i := range persons {
		require.NoError(t, env.persons.Upsert(&persons[i]))
	}

	base := time.Date(2017, time.March, 1, 9, 0, 0, 0, time.UTC)
	noteID := 1
	for _, person := range persons {
		for i := 0; i < 4; i++ {
			note := notedesk.Note{
				ID:        noteID,
				Content:   fmt.Sprintf("Note %d for person %d", noteID, person.ID),
				CreatedAt: base.Add(time.Duration(noteID) * time.Minute),
				CreatedBy: person.CreatedBy,
				PersonID:  person.ID,
			}
			require.NoError(t, env.notes.Upsert(&note))
			noteID++
		}
	}

	require.NoError(t, env.assignments.AssignNote(1, 3))
}
