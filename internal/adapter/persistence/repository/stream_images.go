package repository

import (
	"editora_prisma/internal/domain/entities"

	streamattr "github.com/aws/aws-sdk-go-v2/feature/dynamodbstreams/attributevalue"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

// Stream record images carry the same attribute layout as the table items,
// so decoding reuses the repository item structs.

func QuoteFromStreamImage(image map[string]streamtypes.AttributeValue) (entities.Quote, error) {
	var it quoteItem
	if err := streamattr.UnmarshalMap(image, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func ClientFromStreamImage(image map[string]streamtypes.AttributeValue) (entities.Client, error) {
	var it clientItem
	if err := streamattr.UnmarshalMap(image, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}
