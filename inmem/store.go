// Package inmem provides in-memory implementations of every notedesk
// store. They back the tests and can serve as a throwaway database for
// experiments. All store types share a single Store so that cascades and
// projections operate on one consistent state.
package inmem

import (
	"sync"

	"github.com/aknip/notedesk"
)

// Store is the shared backing state. The exported store types wrap it the
// same way the bolt stores wrap their Driver.
type Store struct {
	mu sync.Mutex

	users   []notedesk.User
	persons []notedesk.Person
	notes   []notedesk.Note

	personAssignments map[[2]int]struct{} // (userID, personID)
	noteAssignments   map[[2]int]struct{} // (noteID, userID)

	maxUserID   int
	maxPersonID int
	maxNoteID   int
}

func NewStore() *Store {
	return &Store{
		users:   make([]notedesk.User, 0),
		persons: make([]notedesk.Person, 0),
		notes:   make([]notedesk.Note, 0),

		personAssignments: make(map[[2]int]struct{}),
		noteAssignments:   make(map[[2]int]struct{}),
	}
}

// deleteNote removes the note and its assignments. Callers hold the lock.
func (s *Store) deleteNote(id int) {
	for i, note := range s.notes {
		if note.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			break
		}
	}

	for key := range s.noteAssignments {
		if key[0] == id {
			delete(s.noteAssignments, key)
		}
	}
}

// deletePerson removes the person, its notes and every assignment
// referencing either. Callers hold the lock.
func (s *Store) deletePerson(id int) {
	for i, person := range s.persons {
		if person.ID == id {
			s.persons = append(s.persons[:i], s.persons[i+1:]...)
			break
		}
	}

	noteIDs := make([]int, 0)
	for _, note := range s.notes {
		if note.PersonID == id {
			noteIDs = append(noteIDs, note.ID)
		}
	}
	for _, noteID := range noteIDs {
		s.deleteNote(noteID)
	}

	for key := range s.personAssignments {
		if key[1] == id {
			delete(s.personAssignments, key)
		}
	}
}
