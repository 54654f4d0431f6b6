package policy

// GrantReason names the rule that made a record visible to a user. A
// resolved record carries every reason that applies, so a result can be
// audited without re-running the rules. Reasons are informational only:
// write decisions always go through CanWrite.
type GrantReason string

const (
	GrantAdmin            GrantReason = "admin"
	GrantPersonCreator    GrantReason = "person-creator"
	GrantNoteCreator      GrantReason = "note-creator"
	GrantPersonAssignment GrantReason = "person-assignment"
	GrantNoteAssignment   GrantReason = "note-assignment"
)
