package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aknip/notedesk"
	"github.com/aknip/notedesk/errors"
)

func TestPersonService_Create(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service := NewPersonService(env.persons, env.users, env.assignments)

	// Any role may create persons, viewers included.
	person, err := service.Create(3, notedesk.Person{FirstName: "Nora", LastName: "Anfang"})
	require.NoError(t, err)
	assert.NotEqual(t, 0, person.ID)
	assert.Equal(t, 3, person.CreatedBy)

	_, err = service.Create(1, notedesk.Person{ID: 42, LastName: "Fest"})
	assert.True(t, errors.IsBadRequest(err), "expected bad request, got %v", err)

	_, err = service.Create(99, notedesk.Person{LastName: "Niemand"})
	assert.True(t, errors.IsNotFound(err))
}

func TestPersonService_Get(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service := NewPersonService(env.persons, env.users, env.assignments)

	// Admin reads everything, creators read their own.
	_, err := service.Get(1, 4)
	assert.NoError(t, err)
	_, err = service.Get(2, 4)
	assert.NoError(t, err)

	// A person the caller cannot see reads as not found, never as
	// forbidden: forbidden would reveal that the id exists.
	_, err = service.Get(3, 4)
	assert.True(t, errors.IsNotFound(err), "expected not found, got %v", err)

	// A person assignment opens the read path.
	require.NoError(t, env.assignments.AssignPerson(3, 4))
	person, err := service.Get(3, 4)
	require.NoError(t, err)
	assert.Equal(t, "Privat", person.LastName)
}

func TestPersonService_Update(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service := NewPersonService(env.persons, env.users, env.assignments)

	// Editors modify persons they do not own.
	person, err := service.Update(2, notedesk.Person{ID: 1, FirstName: "Max", LastName: "Beispiel", Email: "max@example.org"})
	require.NoError(t, err)
	assert.Equal(t, "max@example.org", person.Email)
	assert.Equal(t, 1, person.CreatedBy, "the creator never changes")

	// Viewers only modify their own.
	_, err = service.Update(3, notedesk.Person{ID: 1, LastName: "Beispiel"})
	assert.True(t, errors.IsForbidden(err), "expected forbidden, got %v", err)

	_, err = service.Update(3, notedesk.Person{ID: 5, FirstName: "Olaf", LastName: "Gemein", Phone: "0123"})
	assert.NoError(t, err)

	_, err = service.Update(1, notedesk.Person{ID: 99})
	assert.True(t, errors.IsNotFound(err))
}

func TestPersonService_Delete(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service := NewPersonService(env.persons, env.users, env.assignments)

	err := service.Delete(3, 1)
	assert.True(t, errors.IsForbidden(err))

	require.NoError(t, service.Delete(2, 1))

	persons, err := env.persons.Get(1)
	require.NoError(t, err)
	assert.Empty(t, persons)

	// The cascade removed the person's notes.
	notes, err := env.notes.Get(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestPersonService_List(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service := NewPersonService(env.persons, env.users, env.assignments)

	persons, err := service.List(1)
	require.NoError(t, err)
	assert.Len(t, persons, 5)

	_, err = service.List(2)
	assert.True(t, errors.IsForbidden(err), "listing all persons is reserved for admins")
}
