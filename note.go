package notedesk

import (
	"time"
)

// Note is a free-text record attached to exactly one person.
type Note struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`

	CreatedBy int `json:"createdBy"`
	PersonID  int `json:"personId"`
}

// NoteStore persists notes. Upsert stamps CreatedAt on insert. Delete
// cascades to the note's assignments.
type NoteStore interface {
	Get(...int) ([]Note, error)
	ListByPerson(int) ([]Note, error)
	List() ([]Note, error)
	Upsert(*Note) error
	Delete(int) error
}

type NoteSearch struct {
	// IDs restricts the search to the given note ids. An empty list
	// matches nothing, so an unrestricted search is not expressible:
	// callers always pass the ids the user is allowed to see.
	IDs []int  `json:"ids"`
	Q   string `json:"q"`

	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type Pagination struct {
	Total  uint64 `json:"total"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type NoteSearchResults struct {
	IDs        []int
	Pagination Pagination
}

type NoteIndex interface {
	Index(*Note) error
	Search(NoteSearch) (NoteSearchResults, error)
	Delete(int) error
}
