package notedesk

// Role governs the default permissions of a user. The set is closed: any
// other value is invalid and must never grant access.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
	RoleViewer Role = "Viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// UserStore persists users. Get and GetByUsername return the zero User
// when no user matches; callers check ID == 0.
type UserStore interface {
	Get(int) (User, error)
	GetByUsername(string) (User, error)
	Upsert(*User) error
	List() ([]User, error)
	Delete(int) error
}
