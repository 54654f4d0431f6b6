package services

import (
	"sort"

	"github.com/aknip/notedesk"
	"github.com/aknip/notedesk/policy"
)

// VisibleRecord is one row of a user's visibility set: a person the user
// may see, one of the person's notes (nil when the person has none), and
// the reasons the row is visible.
type VisibleRecord struct {
	Person notedesk.Person `json:"person"`
	Note   *notedesk.Note  `json:"note,omitempty"`

	Reasons []policy.GrantReason `json:"reasons"`
}

// VisibilityService materializes the set of records a user is allowed to
// read. It answers "can see" only; mutations go through CanWrite on the
// individual services.
type VisibilityService struct {
	users notedesk.UserStore
	store notedesk.VisibilityStore
}

func NewVisibilityService(users notedesk.UserStore, store notedesk.VisibilityStore) *VisibilityService {
	return &VisibilityService{
		users: users,
		store: store,
	}
}

// ResolveVisible returns every (person, note) pair userID may read,
// ordered by person last name, first name and note creation time. Each
// pair appears once, with every grant reason that applies. An unknown
// user resolves to the empty set: callers that need to tell "no such
// user" from "no grants" check the user first (UserService.Get).
func (s *VisibilityService) ResolveVisible(userID int) ([]VisibleRecord, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return []VisibleRecord{}, nil
	}

	projections, err := s.store.ListPersonsWithNotes()
	if err != nil {
		return nil, err
	}

	sort.Slice(projections, func(i, j int) bool {
		pi, pj := projections[i].Person, projections[j].Person
		if pi.LastName != pj.LastName {
			return pi.LastName < pj.LastName
		}
		if pi.FirstName != pj.FirstName {
			return pi.FirstName < pj.FirstName
		}
		return pi.ID < pj.ID
	})

	admin := policy.IsAdmin(user.Role)

	records := make([]VisibleRecord, 0)
	for _, projection := range projections {
		personReasons := make([]policy.GrantReason, 0, 3)
		if admin {
			personReasons = append(personReasons, policy.GrantAdmin)
		}
		if projection.Person.CreatedBy == userID {
			personReasons = append(personReasons, policy.GrantPersonCreator)
		}
		if containsInt(projection.Assignees, userID) {
			personReasons = append(personReasons, policy.GrantPersonAssignment)
		}

		notes := projection.Notes
		sort.Slice(notes, func(i, j int) bool {
			ni, nj := notes[i].Note, notes[j].Note
			if !ni.CreatedAt.Equal(nj.CreatedAt) {
				return ni.CreatedAt.Before(nj.CreatedAt)
			}
			return ni.ID < nj.ID
		})

		visibleNotes := 0
		for _, note := range notes {
			reasons := append([]policy.GrantReason(nil), personReasons...)
			if note.Note.CreatedBy == userID {
				reasons = append(reasons, policy.GrantNoteCreator)
			}
			if containsInt(note.Assignees, userID) {
				reasons = append(reasons, policy.GrantNoteAssignment)
			}

			if len(reasons) == 0 {
				continue
			}

			n := note.Note
			records = append(records, VisibleRecord{
				Person:  projection.Person,
				Note:    &n,
				Reasons: reasons,
			})
			visibleNotes++
		}

		// A person the user can see surfaces even without notes.
		if visibleNotes == 0 && len(personReasons) > 0 {
			records = append(records, VisibleRecord{
				Person:  projection.Person,
				Reasons: personReasons,
			})
		}
	}

	return records, nil
}
