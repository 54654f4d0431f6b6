package notedesk

// Person is a shared record. CreatedBy is the id of the user who created
// it; ownership is recorded once and never transfers.
type Person struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`

	CreatedBy int `json:"createdBy"`
}

// PersonStore persists persons. Delete cascades to the person's notes and
// to any assignments referencing them: referential integrity is the
// store's responsibility, not the policy core's.
type PersonStore interface {
	Get(...int) ([]Person, error)
	List() ([]Person, error)
	Upsert(*Person) error
	Delete(int) error
}
