package notedesk

// NoteWithAssignees pairs a note with the ids of the users holding a
// direct assignment on it.
type NoteWithAssignees struct {
	Note      Note
	Assignees []int
}

// PersonProjection is the joined view the visibility resolver consumes: a
// person, its notes, and the assignee lists at both levels. No ordering is
// guaranteed; the resolver orders the final result itself.
type PersonProjection struct {
	Person    Person
	Assignees []int
	Notes     []NoteWithAssignees
}

// VisibilityStore materializes the projection against a single consistent
// snapshot of the store, so that all grant paths are evaluated on the same
// state.
type VisibilityStore interface {
	ListPersonsWithNotes() ([]PersonProjection, error)
}
