package inmem

import (
	"github.com/aknip/notedesk"
)

type UserStore struct {
	Store *Store
}

func (r *UserStore) Get(id int) (notedesk.User, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	for _, user := range r.Store.users {
		if user.ID == id {
			return user, nil
		}
	}

	return notedesk.User{}, nil
}

func (r *UserStore) GetByUsername(username string) (notedesk.User, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	for _, user := range r.Store.users {
		if user.Username == username {
			return user, nil
		}
	}

	return notedesk.User{}, nil
}

func (r *UserStore) Upsert(user *notedesk.User) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	if user.ID == 0 {
		r.Store.maxUserID++
		user.ID = r.Store.maxUserID
	} else if user.ID > r.Store.maxUserID {
		r.Store.maxUserID = user.ID
	}

	for i, u := range r.Store.users {
		if u.ID == user.ID {
			r.Store.users[i] = *user
			return nil
		}
	}

	r.Store.users = append(r.Store.users, *user)
	return nil
}

func (r *UserStore) List() ([]notedesk.User, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	users := make([]notedesk.User, len(r.Store.users))
	copy(users, r.Store.users)
	return users, nil
}

func (r *UserStore) Delete(id int) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	for i, user := range r.Store.users {
		if user.ID == id {
			r.Store.users = append(r.Store.users[:i], r.Store.users[i+1:]...)
			break
		}
	}

	for key := range r.Store.personAssignments {
		if key[0] == id {
			delete(r.Store.personAssignments, key)
		}
	}
	for key := range r.Store.noteAssignments {
		if key[1] == id {
			delete(r.Store.noteAssignments, key)
		}
	}

	return nil
}
