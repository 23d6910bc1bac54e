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

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID        string   `dynamodbav:"id"`
	Name      string   `dynamodbav:"name"`
	Email     string   `dynamodbav:"email,omitempty"`
	Phone     string   `dynamodbav:"phone,omitempty"`
	Source    string   `dynamodbav:"source"`
	Stage     string   `dynamodbav:"stage"`
	Tags      []string `dynamodbav:"tags,omitempty"`
	OwnerID   string   `dynamodbav:"owner_id,omitempty"`
	CreatedAt string   `dynamodbav:"created_at"`
	UpdatedAt string   `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	leads := make([]entities.Lead, 0, len(out.Items))
	for _, raw := range out.Items {
		var it leadItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		leads = append(leads, fromLeadItem(it))
	}
	return leads, nil
}

func (r *LeadDynamoRepository) UpdateStage(ctx context.Context, id string, stage entities.LeadStage) (entities.Lead, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #stage = :stage, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#stage":      "stage",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stage":      &types.AttributeValueMemberS{Value: string(stage)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Source:    string(l.Source),
		Stage:     string(l.Stage),
		Tags:      l.Tags,
		OwnerID:   l.OwnerID,
		CreatedAt: formatTime(l.CreatedAt),
		UpdatedAt: formatTime(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Source:    entities.LeadSource(it.Source),
		Stage:     entities.LeadStage(it.Stage),
		Tags:      it.Tags,
		OwnerID:   it.OwnerID,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
