// Package bolt implements the notedesk stores on top of a bolt database.
// Every entity lives in its own bucket as JSON; assignments are stored
// under composite keys so both directions of a grant can be scanned with
// a prefix cursor.
package bolt

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/boltdb/bolt"
)

var (
	userBucket   = []byte("users")
	personBucket = []byte("persons")
	noteBucket   = []byte("notes")

	// key: itob(userID) + itob(personID)
	personAssignmentBucket = []byte("person_assignments")
	// key: itob(noteID) + itob(userID)
	noteAssignmentBucket = []byte("note_assignments")
)

type Driver struct {
	store *bolt.DB
}

// Open opens the connection to the bolt database defined by path and
// creates the buckets if needed.
func (d *Driver) Open(path string) error {
	if d.store != nil {
		return errors.New("store already open")
	}

	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	err = store.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			userBucket,
			personBucket,
			noteBucket,
			personAssignmentBucket,
			noteAssignmentBucket,
		}
		for _, bucket := range buckets {
			_, err := tx.CreateBucketIfNotExists(bucket)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		store.Close()
		return err
	}

	d.store = store
	return nil
}

// Close closes the underlying database.
func (d *Driver) Close() error {
	if d.store != nil {
		err := d.store.Close()
		d.store = nil
		return err
	}
	return nil
}

// itob returns an 8-byte big endian representation of v.
func itob(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// btoi is the inverse of itob.
func btoi(b []byte) int {
	return int(binary.BigEndian.Uint64(b))
}

// pairKey builds the composite key for an assignment bucket.
func pairKey(first, second int) []byte {
	key := make([]byte, 0, 16)
	key = append(key, itob(first)...)
	key = append(key, itob(second)...)
	return key
}
