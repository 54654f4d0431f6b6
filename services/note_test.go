package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bleveindex "github.com/aknip/notedesk/bleve"
	"github.com/aknip/notedesk/errors"
)

func newNoteService(t *testing.T, env testEnv) (*NoteService, func()) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		t.Fatal("could not create tmp dir:", err)
	}

	index := &bleveindex.NoteIndex{}
	if err := index.Open(filepath.Join(dir, "notes.bleve")); err != nil {
		os.RemoveAll(dir)
		t.Fatal("could not create index:", err)
	}

	visibility := NewVisibilityService(env.users, env.visibility)
	service := NewNoteService(env.notes, env.persons, env.users, env.assignments, index, visibility)

	return service, func() {
		index.Close()
		os.RemoveAll(dir)
	}
}

func TestNoteService_Create(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service, f := newNoteService(t, env)
	defer f()

	// The editor may attach a note to a person he does not own.
	note, err := service.Create(2, 1, "New note created by Bernd for Max")
	require.NoError(t, err)
	assert.NotEqual(t, 0, note.ID)
	assert.Equal(t, 2, note.CreatedBy)
	assert.Equal(t, 1, note.PersonID)
	assert.False(t, note.CreatedAt.IsZero())

	// The viewer may only attach notes to persons she created.
	_, err = service.Create(3, 5, "Clara notes down something about Olaf")
	assert.NoError(t, err)

	_, err = service.Create(3, 1, "Clara tries to note on Max")
	assert.True(t, errors.IsForbidden(err), "expected forbidden, got %v", err)

	// Unknown person and unknown caller.
	_, err = service.Create(2, 99, "no such person")
	assert.True(t, errors.IsNotFound(err))

	_, err = service.Create(99, 1, "no such caller")
	assert.True(t, errors.IsNotFound(err))
}

func TestNoteService_Update(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service, f := newNoteService(t, env)
	defer f()

	// Editors update notes they did not create: write eligibility is
	// role-wide. Note 1 was created by the admin.
	note, err := service.Update(2, 1, "Updated by Bernd")
	require.NoError(t, err)
	assert.Equal(t, "Updated by Bernd", note.Content)
	assert.Equal(t, 1, note.CreatedBy, "the creator never changes")

	// Viewers update their own notes only. Note 17 was created by Clara.
	note, err = service.Update(3, 17, "Updated by Clara")
	require.NoError(t, err)
	assert.Equal(t, "Updated by Clara", note.Content)

	// Note 1 is assigned to Clara, so she can see it, but an assignment
	// grants no write eligibility.
	_, err = service.Update(3, 1, "Clara tries to update")
	assert.True(t, errors.IsForbidden(err), "expected forbidden, got %v", err)

	_, err = service.Update(2, 99, "no such note")
	assert.True(t, errors.IsNotFound(err))
}

func TestNoteService_Get(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service, f := newNoteService(t, env)
	defer f()

	// Admin reads everything.
	_, err := service.Get(1, 17)
	assert.NoError(t, err)

	// Note creator.
	_, err = service.Get(3, 17)
	assert.NoError(t, err)

	// Note assignment.
	_, err = service.Get(3, 1)
	assert.NoError(t, err)

	// Person assignment propagates to the person's notes.
	require.NoError(t, env.assignments.AssignPerson(3, 1))
	_, err = service.Get(3, 2)
	assert.NoError(t, err)

	// Invisible notes read as not found.
	_, err = service.Get(3, 9)
	assert.True(t, errors.IsNotFound(err), "expected not found, got %v", err)
}

func TestNoteService_Delete(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service, f := newNoteService(t, env)
	defer f()

	err := service.Delete(3, 1)
	assert.True(t, errors.IsForbidden(err), "viewers cannot delete foreign notes")

	require.NoError(t, service.Delete(3, 17))
	require.NoError(t, service.Delete(2, 1))

	notes, err := env.notes.Get(1, 17)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteService_Search(t *testing.T) {
	env := newTestEnv()
	loadScenario(t, env)
	service, f := newNoteService(t, env)
	defer f()

	// The scenario notes are not indexed by loadScenario; create a few
	// through the service so the index is exercised end to end.
	meeting, err := service.Create(2, 3, "Meeting about the renewal")
	require.NoError(t, err)
	_, err = service.Create(2, 4, "Lunch with Lisa")
	require.NoError(t, err)
	invisible, err := service.Create(1, 1, "Meeting notes kept by Anna")
	require.NoError(t, err)

	// Bernd finds his own meeting note, not Anna's.
	res, err := service.Search(2, "meeting", 0, 0)
	require.NoError(t, err)
	require.Len(t, res.Notes, 1)
	assert.Equal(t, meeting.ID, res.Notes[0].ID)

	// The admin sees both.
	res, err = service.Search(1, "meeting", 0, 0)
	require.NoError(t, err)
	ids := []int{}
	for _, note := range res.Notes {
		ids = append(ids, note.ID)
	}
	assert.ElementsMatch(t, []int{meeting.ID, invisible.ID}, ids)

	// An empty query returns everything visible, capped by the default
	// limit.
	res, err = service.Search(2, "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, res.Notes, 2, "only indexed notes can match")
}
