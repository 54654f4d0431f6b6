package services

import (
	"github.com/aknip/notedesk"
	"github.com/aknip/notedesk/errors"
	"github.com/aknip/notedesk/policy"
)

// AssignmentService grants and revokes explicit visibility. Only admins
// may manage assignments.
type AssignmentService struct {
	store   notedesk.AssignmentStore
	users   notedesk.UserStore
	persons notedesk.PersonStore
	notes   notedesk.NoteStore
}

func NewAssignmentService(
	store notedesk.AssignmentStore,
	users notedesk.UserStore,
	persons notedesk.PersonStore,
	notes notedesk.NoteStore,
) *AssignmentService {
	return &AssignmentService{
		store:   store,
		users:   users,
		persons: persons,
		notes:   notes,
	}
}

// AssignPerson grants userID visibility on personID and, through the
// resolver's person path, on all of the person's notes. Granting an
// existing assignment is a no-op.
func (s *AssignmentService) AssignPerson(callerID, userID, personID int) error {
	if err := s.admin(callerID); err != nil {
		return err
	}
	if err := s.userExists(userID); err != nil {
		return err
	}
	if err := s.personExists(personID); err != nil {
		return err
	}

	return s.store.AssignPerson(userID, personID)
}

func (s *AssignmentService) UnassignPerson(callerID, userID, personID int) error {
	if err := s.admin(callerID); err != nil {
		return err
	}

	return s.store.UnassignPerson(userID, personID)
}

// AssignNote grants userID visibility on a single note, independent of
// the note's person.
func (s *AssignmentService) AssignNote(callerID, noteID, userID int) error {
	if err := s.admin(callerID); err != nil {
		return err
	}
	if err := s.userExists(userID); err != nil {
		return err
	}

	notes, err := s.notes.Get(noteID)
	if err != nil {
		return err
	} else if len(notes) != 1 {
		return errNoteNotFound(noteID)
	}

	return s.store.AssignNote(noteID, userID)
}

func (s *AssignmentService) UnassignNote(callerID, noteID, userID int) error {
	if err := s.admin(callerID); err != nil {
		return err
	}

	return s.store.UnassignNote(noteID, userID)
}

func (s *AssignmentService) admin(callerID int) error {
	caller, err := s.users.Get(callerID)
	if err != nil {
		return err
	}
	if caller.ID == 0 {
		return errUserNotFound(callerID)
	}

	if !policy.IsAdmin(caller.Role) {
		return errors.New("only admins can manage assignments", errors.Forbidden())
	}
	return nil
}

func (s *AssignmentService) userExists(userID int) error {
	user, err := s.users.Get(userID)
	if err != nil {
		return err
	}
	if user.ID == 0 {
		return errUserNotFound(userID)
	}
	return nil
}

func (s *AssignmentService) personExists(personID int) error {
	persons, err := s.persons.Get(personID)
	if err != nil {
		return err
	}
	if len(persons) != 1 {
		return errPersonNotFound(personID)
	}
	return nil
}
