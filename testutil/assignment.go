package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentStore(t *testing.T, s Stores) {
	// Person assignments
	require.NoError(t, s.Assignments.AssignPerson(1, 10))
	require.NoError(t, s.Assignments.AssignPerson(1, 11))
	require.NoError(t, s.Assignments.AssignPerson(2, 10))

	// Re-assigning is a no-op, the relation is a set
	require.NoError(t, s.Assignments.AssignPerson(1, 10))

	assigned, err := s.Assignments.IsPersonAssigned(1, 10)
	assert.NoError(t, err)
	assert.True(t, assigned)

	assigned, err = s.Assignments.IsPersonAssigned(2, 11)
	assert.NoError(t, err)
	assert.False(t, assigned)

	ids, err := s.Assignments.PersonsAssigned(1)
	if assert.NoError(t, err) {
		assert.ElementsMatch(t, []int{10, 11}, ids)
	}

	require.NoError(t, s.Assignments.UnassignPerson(1, 11))
	ids, err = s.Assignments.PersonsAssigned(1)
	if assert.NoError(t, err) {
		assert.ElementsMatch(t, []int{10}, ids)
	}

	// Revoking a missing assignment is a no-op too
	require.NoError(t, s.Assignments.UnassignPerson(1, 99))

	// Note assignments
	require.NoError(t, s.Assignments.AssignNote(100, 1))
	require.NoError(t, s.Assignments.AssignNote(101, 1))
	require.NoError(t, s.Assignments.AssignNote(100, 2))
	require.NoError(t, s.Assignments.AssignNote(100, 1))

	assigned, err = s.Assignments.IsNoteAssigned(100, 1)
	assert.NoError(t, err)
	assert.True(t, assigned)

	assigned, err = s.Assignments.IsNoteAssigned(101, 2)
	assert.NoError(t, err)
	assert.False(t, assigned)

	ids, err = s.Assignments.NotesAssigned(1)
	if assert.NoError(t, err) {
		assert.ElementsMatch(t, []int{100, 101}, ids)
	}

	require.NoError(t, s.Assignments.UnassignNote(101, 1))
	ids, err = s.Assignments.NotesAssigned(1)
	if assert.NoError(t, err) {
		assert.ElementsMatch(t, []int{100}, ids)
	}
}
