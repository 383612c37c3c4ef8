package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/usecase/interfaces"
)

const quotesStatusIndex = "status-index"

type quoteItem struct {
	ID             string              `dynamodbav:"id"`
	Status         string              `dynamodbav:"status"`
	PricingVariant string              `dynamodbav:"pricing_variant"`
	EstimatedPrice string              `dynamodbav:"estimated_price"`
	Input          entities.QuoteInput `dynamodbav:"input"`
	Estimate       entities.Estimate   `dynamodbav:"estimate"`
	CreatedAt      string              `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Quote{}, err
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// List scans the table, or queries status-index when status is set.
func (r *QuoteDynamoRepository) List(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	var pages [][]map[string]types.AttributeValue
	if status == "" {
		p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	} else {
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(quotesStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	}

	quotes := make([]entities.Quote, 0)
	for _, page := range pages {
		for _, raw := range page {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].CreatedAt.After(quotes[j].CreatedAt) })
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:             q.ID,
		Status:         string(q.Status),
		PricingVariant: string(q.PricingVariant),
		EstimatedPrice: floatToString(q.EstimatedPrice),
		Input:          q.Input,
		Estimate:       q.Estimate,
		CreatedAt:      formatTime(q.CreatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:             it.ID,
		Input:          it.Input,
		PricingVariant: entities.PricingVariant(it.PricingVariant),
		Estimate:       it.Estimate,
		EstimatedPrice: stringToFloat(it.EstimatedPrice),
		Status:         entities.QuoteStatus(it.Status),
		CreatedAt:      parseTime(it.CreatedAt),
	}
}

func putNew(ctx context.Context, ddb DynamoAPI, table string, av map[string]types.AttributeValue) error {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrAlreadyExists
	}
	return err
}

// getByID returns a nil item and nil error when id is unknown.
func getByID(ctx context.Context, ddb DynamoAPI, table, id string) (map[string]types.AttributeValue, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}
