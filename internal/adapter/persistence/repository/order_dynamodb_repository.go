package repository

import (
	"context"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersQuoteIDIndex     = "quote_id-index"
)

type scheduleEntryItem struct {
	Installment int     `dynamodbav:"installment"`
	Value       float64 `dynamodbav:"value"`
	DueDate     string  `dynamodbav:"due_date"`
	Status      string  `dynamodbav:"status"`
}

type orderItem struct {
	ID        string              `dynamodbav:"id"`
	QuoteID   string              `dynamodbav:"quote_id"`
	ClientID  string              `dynamodbav:"client_id,omitempty"`
	ProjectID string              `dynamodbav:"project_id"`
	Total     float64             `dynamodbav:"total"`
	Schedule  []scheduleEntryItem `dynamodbav:"schedule"`
	Status    string              `dynamodbav:"status"`
	CreatedAt string              `dynamodbav:"created_at"`
	UpdatedAt string              `dynamodbav:"updated_at"`
}

// OrderDynamoRepository reads Order entities from DynamoDB. Writes go
// through ApprovalDynamoWriter only.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:        o.ID,
		QuoteID:   o.QuoteID,
		ClientID:  o.ClientID,
		ProjectID: o.ProjectID,
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
	it.Schedule = make([]scheduleEntryItem, 0, len(o.Schedule))
	for _, e := range o.Schedule {
		it.Schedule = append(it.Schedule, scheduleEntryItem{
			Installment: e.Installment,
			Value:       e.Value,
			DueDate:     formatTime(e.DueDate),
			Status:      string(e.Status),
		})
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:        it.ID,
		QuoteID:   it.QuoteID,
		ClientID:  it.ClientID,
		ProjectID: it.ProjectID,
		Total:     it.Total,
		Status:    entities.OrderStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	o.Schedule = make([]entities.ScheduleEntry, 0, len(it.Schedule))
	for _, e := range it.Schedule {
		o.Schedule = append(o.Schedule, entities.ScheduleEntry{
			Installment: e.Installment,
			Value:       e.Value,
			DueDate:     parseTime(e.DueDate),
			Status:      entities.InstallmentStatus(e.Status),
		})
	}
	return o
}
