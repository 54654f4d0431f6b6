package inmem

import (
	"github.com/aknip/notedesk"
)

type PersonStore struct {
	Store *Store
}

func (r *PersonStore) Get(ids ...int) ([]notedesk.Person, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	persons := make([]notedesk.Person, 0, len(ids))
	for _, id := range ids {
		for _, person := range r.Store.persons {
			if person.ID == id {
				persons = append(persons, person)
				break
			}
		}
	}

	return persons, nil
}

func (r *PersonStore) List() ([]notedesk.Person, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	persons := make([]notedesk.Person, len(r.Store.persons))
	copy(persons, r.Store.persons)
	return persons, nil
}

func (r *PersonStore) Upsert(person *notedesk.Person) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	if person.ID == 0 {
		r.Store.maxPersonID++
		person.ID = r.Store.maxPersonID
	} else if person.ID > r.Store.maxPersonID {
		r.Store.maxPersonID = person.ID
	}

	for i, p := range r.Store.persons {
		if p.ID == person.ID {
			r.Store.persons[i] = *person
			return nil
		}
	}

	r.Store.persons = append(r.Store.persons, *person)
	return nil
}

func (r *PersonStore) Delete(id int) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	r.Store.deletePerson(id)
	return nil
}
