package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

const depositsQuoteIDIndex = "quote_id-index"

type depositItem struct {
	ID           string                 `dynamodbav:"id"`
	QuoteID      string                 `dynamodbav:"quote_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// DepositDynamoRepository persists deposit payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
type DepositDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb DynamoAPI, tableName string) *DepositDynamoRepository {
	return &DepositDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DepositDynamoRepository) Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
	av, err := attributevalue.MarshalMap(toDepositItem(p))
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.DepositPayment{}, err
	}
	return p, nil
}

func (r *DepositDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})

	items := make([]entities.DepositPayment, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it depositItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromDepositItem(it))
		}
	}
	return items, nil
}

func toDepositItem(p entities.DepositPayment) depositItem {
	return depositItem{
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		Amount:       floatToString(p.Amount),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromDepositItem(it depositItem) entities.DepositPayment {
	return entities.DepositPayment{
		ID:           it.ID,
		QuoteID:      it.QuoteID,
		Amount:       stringToFloat(it.Amount),
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
