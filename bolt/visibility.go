package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/aknip/notedesk"
)

type VisibilityStore struct {
	Driver *Driver
}

// ListPersonsWithNotes builds the joined projection inside a single View
// transaction, so the resolver evaluates every grant path against one
// consistent snapshot.
func (s *VisibilityStore) ListPersonsWithNotes() ([]notedesk.PersonProjection, error) {
	projections := make([]notedesk.PersonProjection, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		byPerson := make(map[int]int) // person id -> index in projections

		c := tx.Bucket(personBucket).Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var person notedesk.Person
			if err := json.Unmarshal(data, &person); err != nil {
				return err
			}

			byPerson[person.ID] = len(projections)
			projections = append(projections, notedesk.PersonProjection{
				Person:    person,
				Assignees: make([]int, 0),
				Notes:     make([]notedesk.NoteWithAssignees, 0),
			})
		}

		noteAssignees := make(map[int][]int)
		c = tx.Bucket(noteAssignmentBucket).Cursor()
		for key, _ := c.First(); key != nil; key, _ = c.Next() {
			noteID, userID := btoi(key[:8]), btoi(key[8:])
			noteAssignees[noteID] = append(noteAssignees[noteID], userID)
		}

		c = tx.Bucket(noteBucket).Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var note notedesk.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}

			i, ok := byPerson[note.PersonID]
			if !ok {
				// orphaned note, integrity is enforced on the write
				// path so this should not happen
				continue
			}

			assignees := noteAssignees[note.ID]
			if assignees == nil {
				assignees = make([]int, 0)
			}
			projections[i].Notes = append(projections[i].Notes, notedesk.NoteWithAssignees{
				Note:      note,
				Assignees: assignees,
			})
		}

		c = tx.Bucket(personAssignmentBucket).Cursor()
		for key, _ := c.First(); key != nil; key, _ = c.Next() {
			userID, personID := btoi(key[:8]), btoi(key[8:])
			if i, ok := byPerson[personID]; ok {
				projections[i].Assignees = append(projections[i].Assignees, userID)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return projections, nil
}
