package bolt

import (
	"bytes"

	"github.com/boltdb/bolt"
)

type AssignmentStore struct {
	Driver *Driver
}

func (s *AssignmentStore) AssignPerson(userID, personID int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(personAssignmentBucket).Put(pairKey(userID, personID), []byte{})
	})
}

func (s *AssignmentStore) UnassignPerson(userID, personID int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(personAssignmentBucket).Delete(pairKey(userID, personID))
	})
}

func (s *AssignmentStore) IsPersonAssigned(userID, personID int) (bool, error) {
	var assigned bool
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		assigned = tx.Bucket(personAssignmentBucket).Get(pairKey(userID, personID)) != nil
		return nil
	})
	return assigned, err
}

func (s *AssignmentStore) PersonsAssigned(userID int) ([]int, error) {
	ids := make([]int, 0)
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(personAssignmentBucket).Cursor()
		prefix := itob(userID)
		for key, _ := c.Seek(prefix); key != nil && bytes.HasPrefix(key, prefix); key, _ = c.Next() {
			ids = append(ids, btoi(key[8:]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *AssignmentStore) AssignNote(noteID, userID int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(noteAssignmentBucket).Put(pairKey(noteID, userID), []byte{})
	})
}

func (s *AssignmentStore) UnassignNote(noteID, userID int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(noteAssignmentBucket).Delete(pairKey(noteID, userID))
	})
}

func (s *AssignmentStore) IsNoteAssigned(noteID, userID int) (bool, error) {
	var assigned bool
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		assigned = tx.Bucket(noteAssignmentBucket).Get(pairKey(noteID, userID)) != nil
		return nil
	})
	return assigned, err
}

func (s *AssignmentStore) NotesAssigned(userID int) ([]int, error) {
	ids := make([]int, 0)
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(noteAssignmentBucket).Cursor()
		for key, _ := c.First(); key != nil; key, _ = c.Next() {
			if btoi(key[8:]) == userID {
				ids = append(ids, btoi(key[:8]))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
