package services

import (
	"github.com/aknip/notedesk"
	"github.com/aknip/notedesk/errors"
	"github.com/aknip/notedesk/policy"
)

type NoteService struct {
	store       notedesk.NoteStore
	persons     notedesk.PersonStore
	users       notedesk.UserStore
	assignments notedesk.AssignmentStore
	index       notedesk.NoteIndex

	visibility *VisibilityService
}

func NewNoteService(
	store notedesk.NoteStore,
	persons notedesk.PersonStore,
	users notedesk.UserStore,
	assignments notedesk.AssignmentStore,
	index notedesk.NoteIndex,
	visibility *VisibilityService,
) *NoteService {
	return &NoteService{
		store:       store,
		persons:     persons,
		users:       users,
		assignments: assignments,
		index:       index,

		visibility: visibility,
	}
}

// Create attaches a new note to a person. The caller needs write
// eligibility on the person.
func (s *NoteService) Create(callerID, personID int, content string) (notedesk.Note, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return notedesk.Note{}, err
	}

	persons, err := s.persons.Get(personID)
	if err != nil {
		return notedesk.Note{}, err
	} else if len(persons) != 1 {
		return notedesk.Note{}, errPersonNotFound(personID)
	}

	if !policy.CanWrite(caller.Role, persons[0].CreatedBy, callerID) {
		return notedesk.Note{}, errors.New("you are not allowed to add notes to this person", errors.Forbidden())
	}

	note := notedesk.Note{
		Content:   content,
		CreatedBy: callerID,
		PersonID:  personID,
	}
	if err := s.store.Upsert(&note); err != nil {
		return notedesk.Note{}, err
	}

	if err := s.index.Index(&note); err != nil {
		return notedesk.Note{}, err
	}

	return note, nil
}

// Get returns the note if the caller may read it. Any of the four grant
// paths suffices: note creator, person creator, person assignment or note
// assignment.
func (s *NoteService) Get(callerID, id int) (notedesk.Note, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return notedesk.Note{}, err
	}

	notes, err := s.store.Get(id)
	if err != nil {
		return notedesk.Note{}, err
	} else if len(notes) != 1 {
		return notedesk.Note{}, errNoteNotFound(id)
	}
	note := notes[0]

	hasGrant, err := s.hasGrant(callerID, note)
	if err != nil {
		return notedesk.Note{}, err
	}

	if !policy.CanRead(caller.Role, note.CreatedBy, callerID, hasGrant) {
		return notedesk.Note{}, errNoteNotFound(id)
	}

	return note, nil
}

// Update replaces the note's content. Write eligibility is checked
// against the note's creator only; the visibility resolver is never
// consulted for writes.
func (s *NoteService) Update(callerID, id int, content string) (notedesk.Note, error) {
	caller, err := s.caller(callerID)
	if err != nil {
		return notedesk.Note{}, err
	}

	notes, err := s.store.Get(id)
	if err != nil {
		return notedesk.Note{}, err
	} else if len(notes) != 1 {
		return notedesk.Note{}, errNoteNotFound(id)
	}
	note := notes[0]

	if !policy.CanWrite(caller.Role, note.CreatedBy, callerID) {
		return notedesk.Note{}, errors.New("you are not allowed to modify this note", errors.Forbidden())
	}

	note.Content = content
	if err := s.store.Upsert(&note); err != nil {
		return notedesk.Note{}, err
	}

	if err := s.index.Index(&note); err != nil {
		return notedesk.Note{}, err
	}

	return note, nil
}

func (s *NoteService) Delete(callerID, id int) error {
	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}

	notes, err := s.store.Get(id)
	if err != nil {
		return err
	} else if len(notes) != 1 {
		return errNoteNotFound(id)
	}

	if !policy.CanWrite(caller.Role, notes[0].CreatedBy, callerID) {
		return errors.New("you are not allowed to delete this note", errors.Forbidden())
	}

	if err := s.store.Delete(id); err != nil {
		return err
	}

	return s.index.Delete(id)
}

type SearchResults struct {
	Notes      []notedesk.Note     `json:"notes"`
	Pagination notedesk.Pagination `json:"pagination"`
}

// Search queries the index restricted to the notes the caller can see.
func (s *NoteService) Search(callerID int, q string, offset, limit int) (SearchResults, error) {
	records, err := s.visibility.ResolveVisible(callerID)
	if err != nil {
		return SearchResults{}, err
	}

	ids := make([]int, 0, len(records))
	for _, record := range records {
		if record.Note != nil {
			ids = append(ids, record.Note.ID)
		}
	}

	search := notedesk.NoteSearch{
		IDs: ids,
		Q:   q,

		Offset: uint64(offset),
		Limit:  uint64(limit),
	}
	if search.Limit == 0 {
		search.Limit = 20
	}

	res, err := s.index.Search(search)
	if err != nil {
		return SearchResults{}, err
	}

	notes, err := s.store.Get(res.IDs...)
	if err != nil {
		return SearchResults{}, err
	}

	return SearchResults{
		Notes:      notes,
		Pagination: res.Pagination,
	}, nil
}

// hasGrant folds the non-creator grant paths for a note into the single
// assignment fact CanRead expects: person assignment, note assignment, or
// having created the note's person.
func (s *NoteService) hasGrant(callerID int, note notedesk.Note) (bool, error) {
	assigned, err := s.assignments.IsNoteAssigned(note.ID, callerID)
	if err != nil {
		return false, err
	}
	if assigned {
		return true, nil
	}

	assigned, err = s.assignments.IsPersonAssigned(callerID, note.PersonID)
	if err != nil {
		return false, err
	}
	if assigned {
		return true, nil
	}

	persons, err := s.persons.Get(note.PersonID)
	if err != nil {
		return false, err
	}
	return len(persons) == 1 && persons[0].CreatedBy == callerID, nil
}

func (s *NoteService) caller(callerID int) (notedesk.User, error) {
	caller, err := s.users.Get(callerID)
	if err != nil {
		return notedesk.User{}, err
	}
	if caller.ID == 0 {
		return notedesk.User{}, errUserNotFound(callerID)
	}
	return caller, nil
}
