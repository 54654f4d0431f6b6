package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aknip/notedesk"
)

func TestNoteStore(t *testing.T, s Stores) {
	person := notedesk.Person{FirstName: "Karl", LastName: "Offen", CreatedBy: 1}
	require.NoError(t, s.Persons.Upsert(&person))

	notes := []*notedesk.Note{
		{Content: "first note", CreatedBy: 1, PersonID: person.ID},
		{Content: "second note", CreatedBy: 2, PersonID: person.ID},
	}

	for _, note := range notes {
		err := s.Notes.Upsert(note)
		require.NoError(t, err, "insert must not fail")
		require.NotEqual(t, 0, note.ID, "id must be set by insert")
		require.False(t, note.CreatedAt.IsZero(), "creation time must be stamped")
	}
	require.NotEqual(t, notes[0].ID, notes[1].ID)

	// Get
	retrieved, err := s.Notes.Get(notes[0].ID, 999)
	if assert.NoError(t, err) && assert.Len(t, retrieved, 1) {
		assertNote(t, *notes[0], retrieved[0])
	}

	// ListByPerson
	byPerson, err := s.Notes.ListByPerson(person.ID)
	if assert.NoError(t, err) {
		assert.Len(t, byPerson, 2)
	}
	byPerson, err = s.Notes.ListByPerson(999)
	if assert.NoError(t, err) {
		assert.Empty(t, byPerson)
	}

	// Update keeps id and creation time
	createdAt := notes[0].CreatedAt
	notes[0].Content = "first note, edited"
	require.NoError(t, s.Notes.Upsert(notes[0]))

	retrieved, err = s.Notes.Get(notes[0].ID)
	if assert.NoError(t, err) && assert.Len(t, retrieved, 1) {
		assert.Equal(t, "first note, edited", retrieved[0].Content)
		assert.True(t, createdAt.Equal(retrieved[0].CreatedAt), "creation time should not change on update")
	}

	// Delete cascades to the note's assignments
	require.NoError(t, s.Assignments.AssignNote(notes[1].ID, 3))
	require.NoError(t, s.Notes.Delete(notes[1].ID))

	retrieved, err = s.Notes.Get(notes[1].ID)
	assert.NoError(t, err)
	assert.Empty(t, retrieved, "deleted note should be gone")

	assigned, err := s.Assignments.IsNoteAssigned(notes[1].ID, 3)
	assert.NoError(t, err)
	assert.False(t, assigned, "the note's assignments should be gone")
}

// assertNote compares notes field by field: creation times are compared
// with Equal, since a store round trip may normalize the location.
func assertNote(t *testing.T, expected, actual notedesk.Note) {
	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.Content, actual.Content)
	assert.Equal(t, expected.CreatedBy, actual.CreatedBy)
	assert.Equal(t, expected.PersonID, actual.PersonID)
	assert.True(t, expected.CreatedAt.Equal(actual.CreatedAt), "creation times should match")
}
