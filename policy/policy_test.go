package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aknip/notedesk"
)

func TestIsAdmin(t *testing.T) {
	tts := []struct {
		role     notedesk.Role
		expected bool
	}{
		{notedesk.RoleAdmin, true},
		{notedesk.RoleEditor, false},
		{notedesk.RoleViewer, false},
		{notedesk.Role(""), false},
		{notedesk.Role("Superuser"), false},
	}

	for _, tt := range tts {
		assert.Equal(t, tt.expected, IsAdmin(tt.role), "role %q", tt.role)
	}
}

func TestCanRead(t *testing.T) {
	tts := []struct {
		name string

		role          notedesk.Role
		creatorID     int
		userID        int
		hasAssignment bool

		expected bool
	}{
		{"admin reads anything", notedesk.RoleAdmin, 99, 1, false, true},
		{"admin reads assigned", notedesk.RoleAdmin, 99, 1, true, true},
		{"admin reads own", notedesk.RoleAdmin, 1, 1, false, true},

		{"editor reads own", notedesk.RoleEditor, 1, 1, false, true},
		{"editor reads assigned", notedesk.RoleEditor, 99, 1, true, true},
		{"editor denied otherwise", notedesk.RoleEditor, 99, 1, false, false},

		{"viewer reads own", notedesk.RoleViewer, 1, 1, false, true},
		// Assignment grants read even though the creator differs.
		{"viewer reads assigned", notedesk.RoleViewer, 1, 2, true, true},
		{"viewer denied otherwise", notedesk.RoleViewer, 99, 1, false, false},

		{"unknown role denied", notedesk.Role("Owner"), 1, 1, true, false},
		{"empty role denied", notedesk.Role(""), 1, 1, true, false},
	}

	for _, tt := range tts {
		assert.Equal(
			t, tt.expected,
			CanRead(tt.role, tt.creatorID, tt.userID, tt.hasAssignment),
			tt.name,
		)
	}
}

func TestCanWrite(t *testing.T) {
	tts := []struct {
		name string

		role      notedesk.Role
		creatorID int
		userID    int

		expected bool
	}{
		{"admin writes anything", notedesk.RoleAdmin, 99, 1, true},
		{"admin writes own", notedesk.RoleAdmin, 1, 1, true},

		// Editor write is role-wide: a record created by someone else,
		// with no assignment in sight, is still writable.
		{"editor writes non-owned", notedesk.RoleEditor, 99, 1, true},
		{"editor writes own", notedesk.RoleEditor, 1, 1, true},

		{"viewer writes own", notedesk.RoleViewer, 1, 1, true},
		{"viewer denied non-owned", notedesk.RoleViewer, 99, 1, false},

		{"unknown role denied", notedesk.Role("Owner"), 1, 1, false},
		{"empty role denied", notedesk.Role(""), 1, 1, false},
	}

	for _, tt := range tts {
		assert.Equal(t, tt.expected, CanWrite(tt.role, tt.creatorID, tt.userID), tt.name)
	}
}
