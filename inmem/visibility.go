package inmem

import (
	"github.com/aknip/notedesk"
)

type VisibilityStore struct {
	Store *Store
}

// ListPersonsWithNotes builds the joined projection under the store lock,
// so the resolver evaluates every grant path against the same state.
func (r *VisibilityStore) ListPersonsWithNotes() ([]notedesk.PersonProjection, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	projections := make([]notedesk.PersonProjection, 0, len(r.Store.persons))
	for _, person := range r.Store.persons {
		projection := notedesk.PersonProjection{
			Person:    person,
			Assignees: make([]int, 0),
			Notes:     make([]notedesk.NoteWithAssignees, 0),
		}

		for key := range r.Store.personAssignments {
			if key[1] == person.ID {
				projection.Assignees = append(projection.Assignees, key[0])
			}
		}

		for _, note := range r.Store.notes {
			if note.PersonID != person.ID {
				continue
			}

			assignees := make([]int, 0)
			for key := range r.Store.noteAssignments {
				if key[0] == note.ID {
					assignees = append(assignees, key[1])
				}
			}

			projection.Notes = append(projection.Notes, notedesk.NoteWithAssignees{
				Note:      note,
				Assignees: assignees,
			})
		}

		projections = append(projections, projection)
	}

	return projections, nil
}
