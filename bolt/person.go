package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/aknip/notedesk"
)

type PersonStore struct {
	Driver *Driver
}

// Get retrieves the persons defined by ids. Unknown ids are skipped.
func (s *PersonStore) Get(ids ...int) ([]notedesk.Person, error) {
	persons := make([]notedesk.Person, 0, len(ids))
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(personBucket)

		for _, id := range ids {
			data := bucket.Get(itob(id))
			if data == nil {
				continue
			}

			var person notedesk.Person
			if err := json.Unmarshal(data, &person); err != nil {
				return err
			}
			persons = append(persons, person)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return persons, nil
}

func (s *PersonStore) List() ([]notedesk.Person, error) {
	persons := make([]notedesk.Person, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(personBucket).Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var person notedesk.Person
			if err := json.Unmarshal(data, &person); err != nil {
				return err
			}
			persons = append(persons, person)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return persons, nil
}

func (s *PersonStore) Upsert(person *notedesk.Person) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(personBucket)

		if person.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			person.ID = int(id)
		} else if uint64(person.ID) > bucket.Sequence() {
			if err := bucket.SetSequence(uint64(person.ID)); err != nil {
				return err
			}
		}

		data, err := json.Marshal(person)
		if err != nil {
			return err
		}

		return bucket.Put(itob(person.ID), data)
	})
}

// Delete removes the person, the person's notes and every assignment
// referencing either, in one transaction.
func (s *PersonStore) Delete(id int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(personBucket).Delete(itob(id)); err != nil {
			return err
		}

		noteIDs := make([]int, 0)
		c := tx.Bucket(noteBucket).Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var note notedesk.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}
			if note.PersonID == id {
				noteIDs = append(noteIDs, note.ID)
			}
		}
		for _, noteID := range noteIDs {
			if err := deleteNoteTx(tx, noteID); err != nil {
				return err
			}
		}

		// person assignments are keyed by (userID, personID)
		c = tx.Bucket(personAssignmentBucket).Cursor()
		for key, _ := c.First(); key != nil; key, _ = c.Next() {
			if btoi(key[8:]) == id {
				if err := c.Delete(); err != nil {
					return err
				}
			}
		}

		return nil
	})
}
