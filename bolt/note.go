package bolt

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"

	"github.com/aknip/notedesk"
)

type NoteStore struct {
	Driver *Driver
}

// Get retrieves the notes defined by ids. Unknown ids are skipped.
func (s *NoteStore) Get(ids ...int) ([]notedesk.Note, error) {
	notes := make([]notedesk.Note, 0, len(ids))
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		for _, id := range ids {
			data := bucket.Get(itob(id))
			if data == nil {
				continue
			}

			var note notedesk.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}
			notes = append(notes, note)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (s *NoteStore) ListByPerson(personID int) ([]notedesk.Note, error) {
	notes := make([]notedesk.Note, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(noteBucket).Cursor()

		for key, data := c.First(); key != nil; key, data = c.Next() {
			var note notedesk.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}
			if note.PersonID == personID {
				notes = append(notes, note)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (s *NoteStore) List() ([]notedesk.Note, error) {
	notes := make([]notedesk.Note, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(noteBucket).Cursor()

		for key, data := c.First(); key != nil; key, data = c.Next() {
			var note notedesk.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}
			notes = append(notes, note)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Upsert inserts or updates a note. New notes get an id from the bucket
// sequence and a creation timestamp.
func (s *NoteStore) Upsert(note *notedesk.Note) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		if note.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			note.ID = int(id)
		} else if uint64(note.ID) > bucket.Sequence() {
			if err := bucket.SetSequence(uint64(note.ID)); err != nil {
				return err
			}
		}
		if note.CreatedAt.IsZero() {
			note.CreatedAt = time.Now()
		}

		data, err := json.Marshal(note)
		if err != nil {
			return err
		}

		return bucket.Put(itob(note.ID), data)
	})
}

func (s *NoteStore) Delete(id int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		return deleteNoteTx(tx, id)
	})
}

// deleteNoteTx removes a note and its assignments inside tx, so person
// cascades reuse it without opening a nested transaction.
func deleteNoteTx(tx *bolt.Tx, id int) error {
	if err := tx.Bucket(noteBucket).Delete(itob(id)); err != nil {
		return err
	}

	// note assignments are keyed by (noteID, userID)
	c := tx.Bucket(noteAssignmentBucket).Cursor()
	prefix := itob(id)
	for key, _ := c.Seek(prefix); key != nil && bytes.HasPrefix(key, prefix); key, _ = c.Next() {
		if err := c.Delete(); err != nil {
			return err
		}
	}

	return nil
}
