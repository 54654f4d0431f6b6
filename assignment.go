package notedesk

// AssignmentStore holds the explicit grants relating users to persons and
// notes. Both relations are sets: granting an assignment that already
// exists is a no-op, and revoking a missing one is too.
type AssignmentStore interface {
	AssignPerson(userID, personID int) error
	UnassignPerson(userID, personID int) error
	IsPersonAssigned(userID, personID int) (bool, error)
	PersonsAssigned(userID int) ([]int, error)

	AssignNote(noteID, userID int) error
	UnassignNote(noteID, userID int) error
	IsNoteAssigned(noteID, userID int) (bool, error)
	NotesAssigned(userID int) ([]int, error)
}
