package services

import (
	"fmt"

	"github.com/aknip/notedesk"
	"github.com/aknip/notedesk/errors"
)

type UserService struct {
	store notedesk.UserStore
}

func NewUserService(store notedesk.UserStore) *UserService {
	return &UserService{
		store: store,
	}
}

// Get returns the user for id, or a 404 error. It is the existence check
// callers use before resolving visibility, so that "user does not exist"
// is not conflated with "user has zero grants".
func (s *UserService) Get(id int) (notedesk.User, error) {
	user, err := s.store.Get(id)
	if err != nil {
		return notedesk.User{}, err
	}

	if user.ID == 0 {
		return notedesk.User{}, errUserNotFound(id)
	}
	return user, nil
}

func (s *UserService) GetByUsername(username string) (notedesk.User, error) {
	user, err := s.store.GetByUsername(username)
	if err != nil {
		return notedesk.User{}, err
	}

	if user.ID == 0 {
		return notedesk.User{}, errors.New(
			fmt.Sprintf("No user for username %s", username),
			errors.NotFound(),
		)
	}
	return user, nil
}

// Upsert creates or updates a user. The role must be one of the known
// roles: the store never holds a role the policy cannot evaluate.
func (s *UserService) Upsert(u notedesk.User) (notedesk.User, error) {
	if !u.Role.Valid() {
		return notedesk.User{}, errors.New(
			fmt.Sprintf("Invalid role %q", u.Role),
			errors.BadRequest(),
		)
	}

	if u.ID != 0 {
		existing, err := s.store.Get(u.ID)
		if err != nil {
			return notedesk.User{}, err
		} else if existing.ID == 0 {
			return notedesk.User{}, errUserNotFound(u.ID)
		}
	}

	if err := s.store.Upsert(&u); err != nil {
		return notedesk.User{}, err
	}

	return u, nil
}

func (s *UserService) List() ([]notedesk.User, error) {
	return s.store.List()
}

func (s *UserService) Delete(id int) error {
	user, err := s.store.Get(id)
	if err != nil {
		return err
	}
	if user.ID == 0 {
		return errUserNotFound(id)
	}

	return s.store.Delete(id)
}
