package bleve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aknip/notedesk"
)

func createIndex(t *testing.T) (*NoteIndex, func()) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		t.Fatal("could not create tmp dir:", err)
	}

	index := &NoteIndex{}
	if err := index.Open(filepath.Join(dir, "notes.bleve")); err != nil {
		os.RemoveAll(dir)
		t.Fatal("could not create index:", err)
	}

	return index, func() {
		if err := index.Close(); err != nil {
			t.Log(err)
		}
		if err := os.RemoveAll(dir); err != nil {
			t.Log(err)
		}
	}
}

func TestNoteIndex_Search(t *testing.T) {
	index, f := createIndex(t)
	defer f()

	notes := []*notedesk.Note{
		{ID: 1, Content: "Call about the renewal", PersonID: 1},
		{ID: 2, Content: "Lunch meeting next week", PersonID: 1},
		{ID: 3, Content: "Renewal signed and filed", PersonID: 2},
	}
	for _, note := range notes {
		require.NoError(t, index.Index(note), "indexing note %d should not fail", note.ID)
	}

	tts := map[string]struct {
		search   notedesk.NoteSearch
		expected []int
	}{
		"match all within visible ids": {
			search:   notedesk.NoteSearch{IDs: []int{1, 2, 3}},
			expected: []int{1, 2, 3},
		},
		"query narrows": {
			search:   notedesk.NoteSearch{IDs: []int{1, 2, 3}, Q: "renewal"},
			expected: []int{1, 3},
		},
		"ids restrict the query": {
			search:   notedesk.NoteSearch{IDs: []int{3}, Q: "renewal"},
			expected: []int{3},
		},
		"no visible ids means no results": {
			search:   notedesk.NoteSearch{IDs: []int{}, Q: "renewal"},
			expected: []int{},
		},
		"prefix match": {
			search:   notedesk.NoteSearch{IDs: []int{1, 2, 3}, Q: "lun"},
			expected: []int{2},
		},
	}

	for name, tt := range tts {
		res, err := index.Search(tt.search)
		if assert.NoError(t, err, name) {
			assert.Equal(t, tt.expected, res.IDs, name)
		}
	}
}

func TestNoteIndex_Delete(t *testing.T) {
	index, f := createIndex(t)
	defer f()

	note := &notedesk.Note{ID: 1, Content: "To be removed", PersonID: 1}
	require.NoError(t, index.Index(note))
	require.NoError(t, index.Delete(note.ID))

	res, err := index.Search(notedesk.NoteSearch{IDs: []int{1}})
	require.NoError(t, err)
	assert.Empty(t, res.IDs)
}
