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

const (
	defaultInvoicesTableName = "invoices"
	invoicesOrderIDIndex     = "order_id-index"
)

type invoiceItem struct {
	ID               string  `dynamodbav:"id"`
	OrderID          string  `dynamodbav:"order_id"`
	ProjectID        string  `dynamodbav:"project_id,omitempty"`
	ClientID         string  `dynamodbav:"client_id,omitempty"`
	Value            float64 `dynamodbav:"value"`
	DueDate          string  `dynamodbav:"due_date"`
	Installment      int     `dynamodbav:"installment"`
	InstallmentCount int     `dynamodbav:"installment_count"`
	Status           string  `dynamodbav:"status"`
	CatalogCode      *string `dynamodbav:"catalog_code"`
	PaymentID        string  `dynamodbav:"payment_id,omitempty"`
	PaidAt           string  `dynamodbav:"paid_at,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB. Creation
// happens inside the approval transaction (ApprovalDynamoWriter); here live
// reads and the paid-state mutation.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

// MarkPaid flips a pending invoice to pago. The condition on the current
// status makes a concurrent double-collection lose cleanly: the loser gets a
// zero Invoice, nil error.
func (r *InvoiceDynamoRepository) MarkPaid(ctx context.Context, id, paymentID string) (entities.Invoice, error) {
	now := formatTime(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :paid"),
		UpdateExpression:    aws.String("SET #status = :paid, #payment_id = :payment_id, #paid_at = :paid_at, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#payment_id": "payment_id",
			"#paid_at":    "paid_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPago)},
			":payment_id": &types.AttributeValueMemberS{Value: paymentID},
			":paid_at":    &types.AttributeValueMemberS{Value: now},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:               inv.ID,
		OrderID:          inv.OrderID,
		ProjectID:        inv.ProjectID,
		ClientID:         inv.ClientID,
		Value:            inv.Value,
		DueDate:          formatTime(inv.DueDate),
		Installment:      inv.Installment,
		InstallmentCount: inv.InstallmentCount,
		Status:           string(inv.Status),
		CatalogCode:      inv.CatalogCode,
		PaymentID:        inv.PaymentID,
		CreatedAt:        formatTime(inv.CreatedAt),
		UpdatedAt:        formatTime(inv.UpdatedAt),
	}
	if inv.PaidAt != nil {
		it.PaidAt = formatTime(*inv.PaidAt)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:               it.ID,
		OrderID:          it.OrderID,
		ProjectID:        it.ProjectID,
		ClientID:         it.ClientID,
		Value:            it.Value,
		DueDate:          parseTime(it.DueDate),
		Installment:      it.Installment,
		InstallmentCount: it.InstallmentCount,
		Status:           entities.InvoiceStatus(it.Status),
		CatalogCode:      it.CatalogCode,
		PaymentID:        it.PaymentID,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
	if it.PaidAt != "" {
		t := parseTime(it.PaidAt)
		inv.PaidAt = &t
	}
	return inv
}
