package repository

import (
	"context"
	"errors"
	"time"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteLineItem struct {
	Description string  `dynamodbav:"description"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Total       float64 `dynamodbav:"total"`
}

type quoteContactItem struct {
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email,omitempty"`
	Phone string `dynamodbav:"phone,omitempty"`
}

type quoteItem struct {
	ID           string            `dynamodbav:"id"`
	Number       string            `dynamodbav:"number,omitempty"`
	ClientID     string            `dynamodbav:"client_id,omitempty"`
	Contact      *quoteContactItem `dynamodbav:"contact,omitempty"`
	ProjectTitle string            `dynamodbav:"project_title,omitempty"`
	ProductType  string            `dynamodbav:"product_type,omitempty"`
	Status       string            `dynamodbav:"status"`
	Items        []quoteLineItem   `dynamodbav:"items"`
	Subtotal     float64           `dynamodbav:"subtotal"`
	Discount     float64           `dynamodbav:"discount"`
	Tax          float64           `dynamodbav:"tax"`
	Freight      float64           `dynamodbav:"freight"`
	GrandTotal   float64           `dynamodbav:"grand_total"`
	Installments int               `dynamodbav:"installments,omitempty"`
	DueDay       int               `dynamodbav:"due_day,omitempty"`
	ValidUntil   string            `dynamodbav:"valid_until,omitempty"`
	PDFURL       string            `dynamodbav:"pdf_url,omitempty"`
	ProjectID    string            `dynamodbav:"project_id,omitempty"`
	OrderID      string            `dynamodbav:"order_id,omitempty"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The payment plan is flattened into installments/due_day; installments == 0
// means the plan was never specified (lump sum).

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

// SetNumberIfAbsent writes the display number only when the quote exists and
// has no number yet. Returns false (nil error) when the condition rejects
// the write, which covers both redelivery and concurrent assignment.
func (r *QuoteDynamoRepository) SetNumberIfAbsent(ctx context.Context, id, number string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#number)"),
		UpdateExpression:    aws.String("SET #number = :number"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: number},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UpdateStatus performs the conditional transition from -> to. A zero Quote
// with nil error means the quote is missing or no longer in `from`.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :from",
		"SET #status = :to, #updated_at = :updated_at",
		map[string]string{"#status": "status", "#updated_at": "updated_at"},
		map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
	)
}

func (r *QuoteDynamoRepository) SetPDFURL(ctx context.Context, id, url string) (entities.Quote, error) {
	return r.update(ctx, id,
		"attribute_exists(#id)",
		"SET #pdf_url = :pdf_url, #updated_at = :updated_at",
		map[string]string{"#pdf_url": "pdf_url", "#updated_at": "updated_at"},
		map[string]types.AttributeValue{
			":pdf_url": &types.AttributeValueMemberS{Value: url},
		},
	)
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	condExpr, updateExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) (entities.Quote, error) {
	if _, ok := values[":updated_at"]; !ok {
		values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:           q.ID,
		Number:       q.Number,
		ClientID:     q.ClientID,
		ProjectTitle: q.ProjectTitle,
		ProductType:  q.ProductType,
		Status:       string(q.Status),
		Subtotal:     q.Totals.Subtotal,
		Discount:     q.Totals.Discount,
		Tax:          q.Totals.Tax,
		Freight:      q.Totals.Freight,
		GrandTotal:   q.Totals.GrandTotal,
		PDFURL:       q.PDFURL,
		ProjectID:    q.ProjectID,
		OrderID:      q.OrderID,
		CreatedAt:    formatTime(q.CreatedAt),
		UpdatedAt:    formatTime(q.UpdatedAt),
	}
	if q.Contact != nil {
		it.Contact = &quoteContactItem{Name: q.Contact.Name, Email: q.Contact.Email, Phone: q.Contact.Phone}
	}
	if q.PaymentPlan != nil {
		it.Installments = q.PaymentPlan.Installments
		it.DueDay = q.PaymentPlan.DueDay
	}
	if !q.ValidUntil.IsZero() {
		it.ValidUntil = formatTime(q.ValidUntil)
	}
	it.Items = make([]quoteLineItem, 0, len(q.Items))
	for _, li := range q.Items {
		it.Items = append(it.Items, quoteLineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
		})
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:           it.ID,
		Number:       it.Number,
		ClientID:     it.ClientID,
		ProjectTitle: it.ProjectTitle,
		ProductType:  it.ProductType,
		Status:       entities.QuoteStatus(it.Status),
		Totals: entities.QuoteTotals{
			Subtotal:   it.Subtotal,
			Discount:   it.Discount,
			Tax:        it.Tax,
			Freight:    it.Freight,
			GrandTotal: it.GrandTotal,
		},
		PDFURL:    it.PDFURL,
		ProjectID: it.ProjectID,
		OrderID:   it.OrderID,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if it.Contact != nil {
		q.Contact = &entities.QuoteContact{Name: it.Contact.Name, Email: it.Contact.Email, Phone: it.Contact.Phone}
	}
	if it.Installments > 0 {
		q.PaymentPlan = &entities.PaymentPlan{Installments: it.Installments, DueDay: it.DueDay}
	}
	if it.ValidUntil != "" {
		q.ValidUntil = parseTime(it.ValidUntil)
	}
	q.Items = make([]entities.QuoteItem, 0, len(it.Items))
	for _, li := range it.Items {
		q.Items = append(q.Items, entities.QuoteItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
		})
	}
	return q
}
