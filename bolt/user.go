package bolt

import (
	"bytes"
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/aknip/notedesk"
)

type UserStore struct {
	Driver *Driver
}

// Get retrieves the user defined by id. If no user can be found, the zero
// User is returned.
func (s *UserStore) Get(id int) (notedesk.User, error) {
	var user notedesk.User
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &user)
	})
	if err != nil {
		return notedesk.User{}, err
	}

	return user, nil
}

func (s *UserStore) GetByUsername(username string) (notedesk.User, error) {
	var user notedesk.User
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(userBucket).Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var u notedesk.User
			if err := json.Unmarshal(data, &u); err != nil {
				return err
			}

			if u.Username == username {
				user = u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return notedesk.User{}, err
	}

	return user, nil
}

func (s *UserStore) Upsert(user *notedesk.User) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		if user.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			user.ID = int(id)
		} else if uint64(user.ID) > bucket.Sequence() {
			// keep the sequence ahead of explicitly chosen ids
			if err := bucket.SetSequence(uint64(user.ID)); err != nil {
				return err
			}
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		return bucket.Put(itob(user.ID), data)
	})
}

func (s *UserStore) List() ([]notedesk.User, error) {
	users := make([]notedesk.User, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(userBucket).Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var user notedesk.User
			if err := json.Unmarshal(data, &user); err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Delete removes the user and every assignment the user holds. Records
// the user created keep their creator id: ownership is historical.
func (s *UserStore) Delete(id int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(userBucket).Delete(itob(id)); err != nil {
			return err
		}

		// person assignments are keyed by (userID, personID)
		c := tx.Bucket(personAssignmentBucket).Cursor()
		prefix := itob(id)
		for key, _ := c.Seek(prefix); key != nil && bytes.HasPrefix(key, prefix); key, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
		}

		// note assignments are keyed by (noteID, userID): full scan
		c = tx.Bucket(noteAssignmentBucket).Cursor()
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
