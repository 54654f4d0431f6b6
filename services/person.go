package services

import (
	"github.com/aknip/notedesk"
	"github.com/aknip/notedesk/errors"
	"github.com/aknip/notedesk/policy"
)

type PersonService struct {
	store       notedesk.PersonStore
	users       notedesk.UserStore
	assignments notedesk.AssignmentStore
}

func NewPersonService(
	store notedesk.PersonStore,
	users notedesk.UserStore,
	assignments notedesk.AssignmentStore,
) *PersonService {
	return &PersonService{
		store:       store,
		users:       users,
		assignments: assignments,
	}
}

// Create inserts a new person with the caller as creator. Every role may
// create persons; what a user may later do with them is decided by the
// policy, not at creation time.
func (s *PersonService) Create(callerID int, person notedesk.Person) (notedesk.Person, error) {
	if person.ID != 0 {
		return notedesk.Person{}, errors.New("id already set", errors.BadRequest())
	}

	if _, err := s.caller(callerID); err != nil {
		return notedesk.Person{}, err
	}

	person.CreatedBy = callerID
	if err := s.store.Upsert(&person); err != nil {
		return notedesk.Person{}, err
	}

	return person, nil
}

// Get returns the person if the caller may read it. A person the caller
// cannot see is reported as not found, not as forbidden.
func (s *PersonService) Get(callerID, id int) (notedesk.Person, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return notedesk.Person{}, err
	}

	persons, err := s.store.Get(id)
	if err != nil {
		return notedesk.Person{}, err
	} else if len(persons) != 1 {
		return notedesk.Person{}, errPersonNotFound(id)
	}
	person := persons[0]

	assigned, err := s.assignments.IsPersonAssigned(callerID, id)
	if err != nil {
		return notedesk.Person{}, err
	}

	if !policy.CanRead(caller.Role, person.CreatedBy, callerID, assigned) {
		return notedesk.Person{}, errPersonNotFound(id)
	}

	return person, nil
}

// Update modifies the person's descriptive attributes. The creator never
// changes.
func (s *PersonService) Update(callerID int, person notedesk.Person) (notedesk.Person, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return notedesk.Person{}, err
	}

	persons, err := s.store.Get(person.ID)
	if err != nil {
		return notedesk.Person{}, err
	} else if len(persons) != 1 {
		return notedesk.Person{}, errPersonNotFound(person.ID)
	}
	existing := persons[0]

	if !policy.CanWrite(caller.Role, existing.CreatedBy, callerID) {
		return notedesk.Person{}, errors.New("you are not allowed to modify this person", errors.Forbidden())
	}

	person.CreatedBy = existing.CreatedBy
	if err := s.store.Upsert(&person); err != nil {
		return notedesk.Person{}, err
	}

	return person, nil
}

// Delete removes the person. The store cascades to the person's notes and
// to dependent assignments.
func (s *PersonService) Delete(callerID, id int) error {
	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}

	persons, err := s.store.Get(id)
	if err != nil {
		return err
	} else if len(persons) != 1 {
		return errPersonNotFound(id)
	}

	if !policy.CanWrite(caller.Role, persons[0].CreatedBy, callerID) {
		return errors.New("you are not allowed to delete this person", errors.Forbidden())
	}

	return s.store.Delete(id)
}

// List returns every person. Reserved for admins: non-admins go through
// the visibility resolver instead.
func (s *PersonService) List(callerID int) ([]notedesk.Person, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}

	if !policy.IsAdmin(caller.Role) {
		return nil, errors.New("only admins can list all persons", errors.Forbidden())
	}

	return s.store.List()
}

func (s *PersonService) caller(callerID int) (notedesk.User, error) {
	caller, err := s.users.Get(callerID)
	if err != nil {
		return notedesk.User{}, err
	}
	if caller.ID == 0 {
		return notedesk.User{}, errUserNotFound(callerID)
	}
	return caller, nil
}
