package sqlstore

import (
	"time"

	"gorm.io/gorm"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

type QuoteModel struct {
	ID             string              `gorm:"primaryKey;size:36"`
	ClientName     string              `gorm:"size:200;not null"`
	ClientEmail    string              `gorm:"size:320;not null"`
	PricingVariant string              `gorm:"size:32;not null"`
	EstimatedPrice float64             `gorm:"not null"`
	Status         string              `gorm:"size:32;not null;index"`
	Input          entities.QuoteInput `gorm:"serializer:json;not null"`
	Estimate       entities.Estimate   `gorm:"serializer:json;not null"`
	CreatedAt      time.Time           `gorm:"not null;index"`
}

func (QuoteModel) TableName() string { return "quotes" }

type ContactModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:320;not null"`
	Phone     string `gorm:"size:32"`
	Message   string `gorm:"type:text;not null"`
	Status    string `gorm:"size:32;not null"`
	CreatedAt time.Time
}

func (ContactModel) TableName() string { return "contact_messages" }

type DepositModel struct {
	ID           string                 `gorm:"primaryKey;size:64"`
	QuoteID      string                 `gorm:"size:36;not null;index"`
	Amount       float64                `gorm:"not null"`
	Date         time.Time              `gorm:"not null"`
	Status       string                 `gorm:"size:32;not null"`
	MPPayloadRaw string                 `gorm:"type:text"`
	MPPayload    map[string]interface{} `gorm:"serializer:json"`
}

func (DepositModel) TableName() string { return "deposits" }

// Migrate creates or updates the tables the SQL repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&QuoteModel{}, &ContactModel{}, &DepositModel{})
}

func quoteToModel(q entities.Quote) QuoteModel {
	return QuoteModel{
		ID:             q.ID,
		ClientName:     q.Input.ClientName,
		ClientEmail:    q.Input.ClientEmail,
		PricingVariant: string(q.PricingVariant),
		EstimatedPrice: q.EstimatedPrice,
		Status:         string(q.Status),
		Input:          q.Input,
		Estimate:       q.Estimate,
		CreatedAt:      q.CreatedAt.UTC(),
	}
}

func (m QuoteModel) toEntity() entities.Quote {
	return entities.Quote{
		ID:             m.ID,
		Input:          m.Input,
		PricingVariant: entities.PricingVariant(m.PricingVariant),
		Estimate:       m.Estimate,
		EstimatedPrice: m.EstimatedPrice,
		Status:         entities.QuoteStatus(m.Status),
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

func contactToModel(c entities.ContactMessage) ContactModel {
	return ContactModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.UTC(),
	}
}

func (m ContactModel) toEntity() entities.ContactMessage {
	return entities.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    entities.ContactStatus(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func depositToModel(p entities.DepositPayment) DepositModel {
	return DepositModel{
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		Amount:       p.Amount,
		Date:         p.Date.UTC(),
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func (m DepositModel) toEntity() entities.DepositPayment {
	return entities.DepositPayment{
		ID:           m.ID,
		QuoteID:      m.QuoteID,
		Amount:       m.Amount,
		Date:         m.Date.UTC(),
		Status:       entities.PaymentStatus(m.Status),
		MPPayloadRaw: []byte(m.MPPayloadRaw),
		MPPayload:    m.MPPayload,
	}
}
