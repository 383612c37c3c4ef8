package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

type contactItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Message   string `dynamodbav:"message"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ContactDynamoRepository persists contact messages. PK: id (string).
type ContactDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb DynamoAPI, tableName string) *ContactDynamoRepository {
	return &ContactDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	av, err := attributevalue.MarshalMap(contactItem{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: formatTime(m.CreatedAt),
	})
	if err != nil {
		return entities.ContactMessage{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.ContactMessage{}, err
	}
	return m, nil
}

func (r *ContactDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContactMessage, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.ContactMessage{}, err
	}
	var it contactItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.ContactMessage{}, err
	}
	return entities.ContactMessage{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Message:   it.Message,
		Status:    entities.ContactStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}
