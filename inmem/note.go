package inmem

import (
	"time"

	"github.com/aknip/notedesk"
)

type NoteStore struct {
	Store *Store
}

func (r *NoteStore) Get(ids ...int) ([]notedesk.Note, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	notes := make([]notedesk.Note, 0, len(ids))
	for _, id := range ids {
		for _, note := range r.Store.notes {
			if note.ID == id {
				notes = append(notes, note)
				break
			}
		}
	}

	return notes, nil
}

func (r *NoteStore) ListByPerson(personID int) ([]notedesk.Note, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	notes := make([]notedesk.Note, 0)
	for _, note := range r.Store.notes {
		if note.PersonID == personID {
			notes = append(notes, note)
		}
	}

	return notes, nil
}

func (r *NoteStore) List() ([]notedesk.Note, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	notes := make([]notedesk.Note, len(r.Store.notes))
	copy(notes, r.Store.notes)
	return notes, nil
}

func (r *NoteStore) Upsert(note *notedesk.Note) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	if note.ID == 0 {
		r.Store.maxNoteID++
		note.ID = r.Store.maxNoteID
		if note.CreatedAt.IsZero() {
			note.CreatedAt = time.Now()
		}
	} else if note.ID > r.Store.maxNoteID {
		r.Store.maxNoteID = note.ID
		if note.CreatedAt.IsZero() {
			note.CreatedAt = time.Now()
		}
	}

	for i, n := range r.Store.notes {
		if n.ID == note.ID {
			r.Store.notes[i] = *note
			return nil
		}
	}

	r.Store.notes = append(r.Store.notes, *note)
	return nil
}

func (r *NoteStore) Delete(id int) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	r.Store.deleteNote(id)
	return nil
}
