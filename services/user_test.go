package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aknip/notedesk"
	"github.com/aknip/notedesk/errors"
)

func TestUserService_Upsert(t *testing.T) {
	env := newTestEnv()
	service := NewUserService(env.users)

	user, err := service.Upsert(notedesk.User{Username: "anna.schmitt", Role: notedesk.RoleAdmin})
	require.NoError(t, err)
	assert.NotEqual(t, 0, user.ID)

	// The store never holds a role the policy cannot evaluate.
	_, err = service.Upsert(notedesk.User{Username: "eve", Role: "superuser"})
	assert.True(t, errors.IsBadRequest(err), "expected bad request, got %v", err)

	_, err = service.Upsert(notedesk.User{ID: 99, Username: "ghost", Role: notedesk.RoleViewer})
	assert.True(t, errors.IsNotFound(err))

	user.Role = notedesk.RoleEditor
	updated, err := service.Upsert(user)
	require.NoError(t, err)
	assert.Equal(t, notedesk.RoleEditor, updated.Role)
}

func TestUserService_Get(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service := NewUserService(env.users)

	user, err := service.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "clara.schulz", user.Username)

	_, err = service.Get(99)
	assert.True(t, errors.IsNotFound(err))

	user, err = service.GetByUsername("bernd.mueller")
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)

	_, err = service.GetByUsername("nobody")
	assert.True(t, errors.IsNotFound(err))
}

func TestUserService_Delete(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service := NewUserService(env.users)

	require.NoError(t, service.Delete(3))
	assert.True(t, errors.IsNotFound(service.Delete(3)))

	users, err := service.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
