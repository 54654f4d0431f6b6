package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aknip/notedesk"
)

func TestVisibilityStore(t *testing.T, s Stores) {
	withNotes := notedesk.Person{FirstName: "Max", LastName: "Beispiel", CreatedBy: 1}
	require.NoError(t, s.Persons.Upsert(&withNotes))
	withoutNotes := notedesk.Person{FirstName: "Eva", LastName: "Team", CreatedBy: 2}
	require.NoError(t, s.Persons.Upsert(&withoutNotes))

	notes := []*notedesk.Note{
		{Content: "a", CreatedBy: 1, PersonID: withNotes.ID},
		{Content: "b", CreatedBy: 2, PersonID: withNotes.ID},
	}
	for _, note := range notes {
		require.NoError(t, s.Notes.Upsert(note))
	}

	require.NoError(t, s.Assignments.AssignPerson(3, withNotes.ID))
	require.NoError(t, s.Assignments.AssignNote(notes[1].ID, 3))

	projections, err := s.Visibility.ListPersonsWithNotes()
	require.NoError(t, err)
	require.Len(t, projections, 2)

	byID := make(map[int]notedesk.PersonProjection, len(projections))
	for _, projection := range projections {
		byID[projection.Person.ID] = projection
	}

	p := byID[withNotes.ID]
	assert.Equal(t, withNotes, p.Person)
	assert.ElementsMatch(t, []int{3}, p.Assignees)
	require.Len(t, p.Notes, 2)

	byNote := make(map[int]notedesk.NoteWithAssignees, len(p.Notes))
	for _, note := range p.Notes {
		byNote[note.Note.ID] = note
	}
	assert.Empty(t, byNote[notes[0].ID].Assignees)
	assert.ElementsMatch(t, []int{3}, byNote[notes[1].ID].Assignees)

	p = byID[withoutNotes.ID]
	assert.Equal(t, withoutNotes, p.Person)
	assert.Empty(t, p.Assignees)
	assert.Empty(t, p.Notes, "a person without notes still surfaces in the projection")
}
