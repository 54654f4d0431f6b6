package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aknip/notedesk"
)

func TestPersonStore(t *testing.T, s Stores) {
	persons := []*notedesk.Person{
		{FirstName: "Max", LastName: "Beispiel", Email: "max@example.com", CreatedBy: 1},
		{FirstName: "Eva", LastName: "Team", Email: "eva@example.com", CreatedBy: 1},
	}

	for _, person := range persons {
		err := s.Persons.Upsert(person)
		require.NoError(t, err, "insert %s must not fail", person.LastName)
		require.NotEqual(t, 0, person.ID, "id must be set by insert")
	}
	require.NotEqual(t, persons[0].ID, persons[1].ID)

	// Get several ids at once; unknown ids are skipped
	retrieved, err := s.Persons.Get(persons[0].ID, persons[1].ID, 999)
	if assert.NoError(t, err) {
		assert.Equal(t, []notedesk.Person{*persons[0], *persons[1]}, retrieved)
	}

	// Update keeps the id
	persons[0].Email = "max.beispiel@example.com"
	id := persons[0].ID
	require.NoError(t, s.Persons.Upsert(persons[0]))
	assert.Equal(t, id, persons[0].ID)

	retrieved, err = s.Persons.Get(persons[0].ID)
	if assert.NoError(t, err) && assert.Len(t, retrieved, 1) {
		assert.Equal(t, "max.beispiel@example.com", retrieved[0].Email)
	}

	// List
	list, err := s.Persons.List()
	if assert.NoError(t, err) {
		assert.Len(t, list, 2)
	}

	// Delete cascades to notes and assignments
	note := notedesk.Note{Content: "attached", CreatedBy: 1, PersonID: persons[0].ID}
	require.NoError(t, s.Notes.Upsert(&note))
	require.NoError(t, s.Assignments.AssignPerson(2, persons[0].ID))
	require.NoError(t, s.Assignments.AssignNote(note.ID, 2))

	require.NoError(t, s.Persons.Delete(persons[0].ID))

	retrieved, err = s.Persons.Get(persons[0].ID)
	assert.NoError(t, err)
	assert.Empty(t, retrieved, "deleted person should be gone")

	notes, err := s.Notes.ListByPerson(persons[0].ID)
	assert.NoError(t, err)
	assert.Empty(t, notes, "the person's notes should be gone")

	assigned, err := s.Assignments.IsPersonAssigned(2, persons[0].ID)
	assert.NoError(t, err)
	assert.False(t, assigned, "person assignments should be gone")

	assigned, err = s.Assignments.IsNoteAssigned(note.ID, 2)
	assert.NoError(t, err)
	assert.False(t, assigned, "assignments of the person's notes should be gone")

	// The other person is untouched
	list, err = s.Persons.List()
	if assert.NoError(t, err) {
		assert.Len(t, list, 1)
	}
}
