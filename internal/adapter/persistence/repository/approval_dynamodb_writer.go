package repository

import (
	"context"
	"errors"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ApprovalDynamoWriter persists the signing cascade in one TransactWriteItems:
// an optional client put, the project, the order, its invoices and the quote
// update linking everything together. The quote update carries the
// attribute_not_exists(order_id) guard, so a quote that already went through
// the cascade cancels the whole transaction and Apply reports (false, nil).

type ApprovalDynamoWriter struct {
	ddb           *dynamodb.Client
	quotesTable   string
	clientsTable  string
	projectsTable string
	ordersTable   string
	invoicesTable string
}

var _ interfaces.IApprovalWriter = (*ApprovalDynamoWriter)(nil)

func NewApprovalDynamoWriter(ddb *dynamodb.Client) *ApprovalDynamoWriter {
	return &ApprovalDynamoWriter{
		ddb:           ddb,
		quotesTable:   getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		clientsTable:  getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		projectsTable: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		ordersTable:   getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		invoicesTable: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (w *ApprovalDynamoWriter) Apply(ctx context.Context, bundle entities.ApprovalBundle) (bool, error) {
	items := make([]types.TransactWriteItem, 0, 4+len(bundle.Invoices))

	if bundle.NewClient != nil {
		put, err := w.putItem(w.clientsTable, toClientItem(*bundle.NewClient))
		if err != nil {
			return false, err
		}
		items = append(items, put)
	}

	put, err := w.putItem(w.projectsTable, toProjectItem(bundle.Project))
	if err != nil {
		return false, err
	}
	items = append(items, put)

	put, err = w.putItem(w.ordersTable, toOrderItem(bundle.Order))
	if err != nil {
		return false, err
	}
	items = append(items, put)

	for _, inv := range bundle.Invoices {
		put, err = w.putItem(w.invoicesTable, toInvoiceItem(inv))
		if err != nil {
			return false, err
		}
		items = append(items, put)
	}

	items = append(items, w.quoteLink(bundle))

	_, err = w.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && anyConditionalCheckFailed(tce.CancellationReasons) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (w *ApprovalDynamoWriter) putItem(table string, item any) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(table),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}, nil
}

func (w *ApprovalDynamoWriter) quoteLink(bundle entities.ApprovalBundle) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(w.quotesTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: bundle.QuoteID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#order_id)"),
			UpdateExpression:    aws.String("SET #client_id = :client_id, #project_id = :project_id, #order_id = :order_id, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#client_id":  "client_id",
				"#project_id": "project_id",
				"#order_id":   "order_id",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":client_id":  &types.AttributeValueMemberS{Value: bundle.ClientID},
				":project_id": &types.AttributeValueMemberS{Value: bundle.Project.ID},
				":order_id":   &types.AttributeValueMemberS{Value: bundle.Order.ID},
				":updated_at": &types.AttributeValueMemberS{Value: formatTime(bundle.Order.CreatedAt)},
			},
		},
	}
}

func anyConditionalCheckFailed(reasons []types.CancellationReason) bool {
	for _, reason := range reasons {
		if isConditionalCheckFailed(reason) {
			return true
		}
	}
	return false
}
