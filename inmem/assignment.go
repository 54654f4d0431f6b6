package inmem

type AssignmentStore struct {
	Store *Store
}

func (r *AssignmentStore) AssignPerson(userID, personID int) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	r.Store.personAssignments[[2]int{userID, personID}] = struct{}{}
	return nil
}

func (r *AssignmentStore) UnassignPerson(userID, personID int) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	delete(r.Store.personAssignments, [2]int{userID, personID})
	return nil
}

func (r *AssignmentStore) IsPersonAssigned(userID, personID int) (bool, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	_, ok := r.Store.personAssignments[[2]int{userID, personID}]
	return ok, nil
}

func (r *AssignmentStore) PersonsAssigned(userID int) ([]int, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	ids := make([]int, 0)
	for key := range r.Store.personAssignments {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	return ids, nil
}

func (r *AssignmentStore) AssignNote(noteID, userID int) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	r.Store.noteAssignments[[2]int{noteID, userID}] = struct{}{}
	return nil
}

func (r *AssignmentStore) UnassignNote(noteID, userID int) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	delete(r.Store.noteAssignments, [2]int{noteID, userID})
	return nil
}

func (r *AssignmentStore) IsNoteAssigned(noteID, userID int) (bool, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	_, ok := r.Store.noteAssignments[[2]int{noteID, userID}]
	return ok, nil
}

func (r *AssignmentStore) NotesAssigned(userID int) ([]int, error) {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	ids := make([]int, 0)
	for key := range r.Store.noteAssignments {
		if key[1] == userID {
			ids = append(ids, key[0])
		}
	}
	return ids, nil
}
