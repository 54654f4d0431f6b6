// Package seed loads the showcase dataset: three users covering each
// role, five persons, four notes per person, and the person and note
// grants exercised by the demo use cases.
package seed

import (
	"fmt"
	"time"

	"github.com/aknip/notedesk"
)

// Stores lists the stores Insert writes to. Index may be nil when no
// search index is wired.
type Stores struct {
	Users       notedesk.UserStore
	Persons     notedesk.PersonStore
	Notes       notedesk.NoteStore
	Assignments notedesk.AssignmentStore
	Index       notedesk.NoteIndex
}

// Seeded reports whether the database already holds data: seeding is
// skipped as soon as any user exists.
func Seeded(users notedesk.UserStore) (bool, error) {
	list, err := users.List()
	if err != nil {
		return false, err
	}
	return len(list) > 0, nil
}

// Insert writes the sample dataset. It assumes an empty database; use
// Seeded to check first.
func Insert(s Stores) error {
	users := []notedesk.User{
		{ID: 1, Username: "anna.schmitt", Role: notedesk.RoleAdmin},
		{ID: 2, Username: "bernd.mueller", Role: notedesk.RoleEditor},
		{ID: 3, Username: "clara.schulz", Role: notedesk.RoleViewer},
	}
	for i := range users {
		if err := s.Users.Upsert(&users[i]); err != nil {
			return err
		}
	}

	persons := []notedesk.Person{
		{ID: 1, FirstName: "Max", LastName: "Beispiel", Email: "max.beispiel@example.com", Phone: "+4912345678", CreatedBy: 1},
		{ID: 2, FirstName: "Eva", LastName: "Team", Email: "eva.team@example.com", Phone: "+4912345679", CreatedBy: 1},
		{ID: 3, FirstName: "Karl", LastName: "Offen", Email: "karl.offen@example.com", Phone: "+4912345680", CreatedBy: 2},
		{ID: 4, FirstName: "Lisa", LastName: "Privat", Email: "lisa.privat@example.com", Phone: "+4912345681", CreatedBy: 2},
		{ID: 5, FirstName: "Olaf", LastName: "Gemein", Email: "olaf.gemein@example.com", Phone: "+4912345682", CreatedBy: 3},
	}
	for i := range persons {
		if err := s.Persons.Upsert(&persons[i]); err != nil {
			return err
		}
	}

	// Four notes per person, created by the person's creator. Timestamps
	// step by a minute so creation order is stable.
	base := time.Date(2017, time.March, 1, 9, 0, 0, 0, time.UTC)
	noteID := 1
	for personID := 1; personID <= 5; personID++ {
		createdBy := 1
		if personID >= 3 {
			createdBy = 2
		}
		if personID >= 5 {
			createdBy = 3
		}

		for i := 0; i < 4; i++ {
			note := notedesk.Note{
				ID:        noteID,
				Content:   fmt.Sprintf("Note %d for person %d", noteID, personID),
				CreatedAt: base.Add(time.Duration(noteID) * time.Minute),
				CreatedBy: createdBy,
				PersonID:  personID,
			}
			if err := s.Notes.Upsert(&note); err != nil {
				return err
			}
			if s.Index != nil {
				if err := s.Index.Index(&note); err != nil {
					return err
				}
			}
			noteID++
		}
	}

	// Shared access on whole persons.
	personAssignments := [][2]int{
		{1, 1}, {1, 2}, // anna can access Max and Eva
		{2, 3}, {2, 4}, // bernd can access Karl and Lisa
		{3, 5}, // clara can access Olaf
	}
	for _, a := range personAssignments {
		if err := s.Assignments.AssignPerson(a[0], a[1]); err != nil {
			return err
		}
	}

	// A few notes shared across users.
	noteAssignments := [][2]int{
		{1, 2}, {1, 3},
		{5, 1}, {5, 3},
		{10, 1},
		{15, 2},
		{20, 1},
	}
	for _, a := range noteAssignments {
		if err := s.Assignments.AssignNote(a[0], a[1]); err != nil {
			return err
		}
	}

	return nil
}
