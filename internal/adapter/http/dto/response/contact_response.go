package response

import (
	"time"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

const ContactCreatedMessage = "Thank you for your message! We will get back to you soon."

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactCreatedResponse struct {
	Message string          `json:"message"`
	Contact ContactResponse `json:"contact"`
}

func FromContact(m entities.ContactMessage) ContactResponse {
	return ContactResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func FromContactCreated(m entities.ContactMessage) ContactCreatedResponse {
	return ContactCreatedResponse{Message: ContactCreatedMessage, Contact: FromContact(m)}
}
