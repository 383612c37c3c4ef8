package entities

import "time"

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusArchived ContactStatus = "archived"
)

var contactStatusLabels = map[ContactStatus]string{
	ContactStatusNew:      "New",
	ContactStatusRead:     "Read",
	ContactStatusArchived: "Archived",
}

func (s ContactStatus) Label() string {
	if l, ok := contactStatusLabels[s]; ok {
		return l
	}
	return "Unknown"
}

// ContactMessage is a general enquiry left through the contact form.
type ContactMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
