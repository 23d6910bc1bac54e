package repository

import (
	"context"
	"errors"
	"fmt"

	"editora_prisma/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountersTableName = "counters"
	clientCounterName        = "clients"

	// Bound on optimistic retries when two assignments race on the counter.
	counterMaxAttempts = 5
)

type counterItem struct {
	Name    string `dynamodbav:"name"`
	Current int    `dynamodbav:"current"`
}

// counterClient is the slice of the DynamoDB API the counter needs.
type counterClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// CounterDynamoRepository assigns sequential client numbers from a singleton
// counter item.
//
// Table requirements:
//   - counters: PK name (string)
//
// The increment and the client stamp run in one TransactWriteItems guarded
// by two conditions: the counter must still hold the value we read, and the
// client must not be numbered yet. A counter conflict retries with a fresh
// read; an already-numbered client resolves to its existing number, which
// makes redelivered creation events a no-op.

type CounterDynamoRepository struct {
	ddb          counterClient
	tableName    string
	clientsTable string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		clientsTable: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *CounterDynamoRepository) NextClientNumber(ctx context.Context, clientID string) (int, error) {
	for attempt := 0; attempt < counterMaxAttempts; attempt++ {
		current, exists, err := r.read(ctx)
		if err != nil {
			return 0, err
		}
		next := current + 1

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				r.counterWrite(current, next, exists),
				{
					Update: &types.Update{
						TableName: aws.String(r.clientsTable),
						Key: map[string]types.AttributeValue{
							"id": &types.AttributeValueMemberS{Value: clientID},
						},
						ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#client_number)"),
						UpdateExpression:    aws.String("SET #client_number = :n"),
						ExpressionAttributeNames: map[string]string{
							"#id":            "id",
							"#client_number": "client_number",
						},
						ExpressionAttributeValues: map[string]types.AttributeValue{
							":n": &types.AttributeValueMemberN{Value: intToString(next)},
						},
					},
				},
			},
		})
		if err == nil {
			return next, nil
		}

		var tce *types.TransactionCanceledException
		if !errors.As(err, &tce) {
			return 0, err
		}

		// Reason index 1 is the client update. A conditional failure there
		// means the client is missing or already numbered; anything on the
		// counter side is a lost race worth retrying.
		if len(tce.CancellationReasons) > 1 && isConditionalCheckFailed(tce.CancellationReasons[1]) {
			return r.existingClientNumber(ctx, clientID)
		}
	}
	return 0, fmt.Errorf("client number assignment for %s gave up after %d attempts", clientID, counterMaxAttempts)
}

func (r *CounterDynamoRepository) read(ctx context.Context) (current int, exists bool, err error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: clientCounterName},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, false, err
	}
	if len(out.Item) == 0 {
		return 0, false, nil
	}

	var it counterItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, false, err
	}
	return it.Current, true, nil
}

func (r *CounterDynamoRepository) counterWrite(current, next int, exists bool) types.TransactWriteItem {
	if !exists {
		return types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item: map[string]types.AttributeValue{
					"name":    &types.AttributeValueMemberS{Value: clientCounterName},
					"current": &types.AttributeValueMemberN{Value: intToString(next)},
				},
				ConditionExpression: aws.String("attribute_not_exists(#name)"),
				ExpressionAttributeNames: map[string]string{
					"#name": "name",
				},
			},
		}
	}
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"name": &types.AttributeValueMemberS{Value: clientCounterName},
			},
			ConditionExpression: aws.String("#current = :current"),
			UpdateExpression:    aws.String("SET #current = :next"),
			ExpressionAttributeNames: map[string]string{
				"#current": "current",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":current": &types.AttributeValueMemberN{Value: intToString(current)},
				":next":    &types.AttributeValueMemberN{Value: intToString(next)},
			},
		},
	}
}

func (r *CounterDynamoRepository) existingClientNumber(ctx context.Context, clientID string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.clientsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: clientID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, fmt.Errorf("client %s not found for number assignment", clientID)
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	if it.ClientNumber == 0 {
		return 0, fmt.Errorf("client %s rejected number assignment but carries none", clientID)
	}
	return it.ClientNumber, nil
}

func isConditionalCheckFailed(reason types.CancellationReason) bool {
	return reason.Code != nil && *reason.Code == "ConditionalCheckFailed"
}
