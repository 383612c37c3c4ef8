package request

import "github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"

type ContactRequest struct {
	Name    string `json:"name" example:"Tama"`
	Email   string `json:"email" example:"tama@example.com"`
	Phone   string `json:"phone"`
	Message string `json:"message" example:"Do you clean gyms on weekends?"`
}

func (r ContactRequest) ToEntity() entities.ContactMessage {
	return entities.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}
