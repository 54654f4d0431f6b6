package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aknip/notedesk"
)

func TestUserStore(t *testing.T, s Stores) {
	users := []*notedesk.User{
		{Username: "anna.schmitt", Role: notedesk.RoleAdmin},
		{Username: "bernd.mueller", Role: notedesk.RoleEditor},
	}

	// Insert: ids are assigned and distinct
	for _, user := range users {
		err := s.Users.Upsert(user)
		require.NoError(t, err, "insert %s must not fail", user.Username)
		require.NotEqual(t, 0, user.ID, "id must be set by insert")
	}
	require.NotEqual(t, users[0].ID, users[1].ID, "all ids must be different")

	// Get
	for _, user := range users {
		retrieved, err := s.Users.Get(user.ID)
		if assert.NoError(t, err) {
			assert.Equal(t, *user, retrieved, "get %s", user.Username)
		}
	}

	// Get unknown id: zero user, no error
	retrieved, err := s.Users.Get(999)
	assert.NoError(t, err)
	assert.Equal(t, notedesk.User{}, retrieved, "unknown id should give the zero user")

	// Get by username
	retrieved, err = s.Users.GetByUsername("bernd.mueller")
	if assert.NoError(t, err) {
		assert.Equal(t, *users[1], retrieved)
	}

	// Update
	users[0].Role = notedesk.RoleEditor
	id := users[0].ID
	err = s.Users.Upsert(users[0])
	assert.NoError(t, err)
	assert.Equal(t, id, users[0].ID, "id should not change on update")

	retrieved, err = s.Users.Get(users[0].ID)
	if assert.NoError(t, err) {
		assert.Equal(t, notedesk.RoleEditor, retrieved.Role)
	}

	// List
	list, err := s.Users.List()
	if assert.NoError(t, err) {
		assert.Len(t, list, 2)
	}

	// Explicit ids do not break later inserts
	explicit := &notedesk.User{ID: 10, Username: "clara.schulz", Role: notedesk.RoleViewer}
	require.NoError(t, s.Users.Upsert(explicit))
	generated := &notedesk.User{Username: "dora.weiss", Role: notedesk.RoleViewer}
	require.NoError(t, s.Users.Upsert(generated))
	assert.Greater(t, generated.ID, 10, "generated id should not collide with explicit ids")

	// Delete removes the user and the user's assignments
	require.NoError(t, s.Persons.Upsert(&notedesk.Person{FirstName: "Max", LastName: "Beispiel", CreatedBy: users[0].ID}))
	persons, err := s.Persons.List()
	require.NoError(t, err)
	require.Len(t, persons, 1)
	require.NoError(t, s.Assignments.AssignPerson(explicit.ID, persons[0].ID))

	require.NoError(t, s.Users.Delete(explicit.ID))

	retrieved, err = s.Users.Get(explicit.ID)
	assert.NoError(t, err)
	assert.Equal(t, notedesk.User{}, retrieved, "deleted user should be gone")

	assigned, err := s.Assignments.IsPersonAssigned(explicit.ID, persons[0].ID)
	assert.NoError(t, err)
	assert.False(t, assigned, "deleting a user should drop the user's assignments")
}
