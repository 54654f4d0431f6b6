package services

import (
	"fmt"

	"github.com/aknip/notedesk/errors"
)

// errUserNotFound returns a 404 for when a user could not be found.
func errUserNotFound(id int) error {
	return errors.New(fmt.Sprintf("No user for id %d", id), errors.NotFound())
}

// errPersonNotFound returns a 404 for when a person could not be found,
// including when the caller is not allowed to see it.
func errPersonNotFound(id int) error {
	return errors.New(fmt.Sprintf("No person for id %d", id), errors.NotFound())
}

// errNoteNotFound returns a 404 for when a note could not be found,
// including when the caller is not allowed to see it.
func errNoteNotFound(id int) error {
	return errors.New(fmt.Sprintf("No note for id %d", id), errors.NotFound())
}

func containsInt(ids []int, id int) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}
