package events

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

const defaultPollInterval = 2 * time.Second

// Handler processes one change record from a table stream. Errors are logged
// and swallowed by the consumer; a failing record is never retried.
type Handler func(ctx context.Context, record streamtypes.Record) error

// tablesAPI is the slice of the DynamoDB API the consumer needs.
type tablesAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// streamsAPI is the slice of the DynamoDB Streams API the consumer needs.
type streamsAPI interface {
	DescribeStream(ctx context.Context, params *dynamodbstreams.DescribeStreamInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.DescribeStreamOutput, error)
	GetShardIterator(ctx context.Context, params *dynamodbstreams.GetShardIteratorInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetShardIteratorOutput, error)
	GetRecords(ctx context.Context, params *dynamodbstreams.GetRecordsInput, optFns ...func(*dynamodbstreams.Options)) (*dynamodbstreams.GetRecordsOutput, error)
}

// Consumer polls DynamoDB Streams for the registered tables and dispatches
// each record to that table's handler. One goroutine per table. The first
// shard discovery subscribes from LATEST, so records written before startup
// are not replayed; shards that appear later (shard rotation) subscribe from
// TRIM_HORIZON so nothing written during the rotation is dropped.
type Consumer struct {
	ddb          tablesAPI
	streams      streamsAPI
	pollInterval time.Duration
	wg           sync.WaitGroup
	handlers     map[string]Handler
}

func NewConsumer(ddb *dynamodb.Client, streams *dynamodbstreams.Client, pollInterval time.Duration) *Consumer {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Consumer{
		ddb:          ddb,
		streams:      streams,
		pollInterval: pollInterval,
		handlers:     make(map[string]Handler),
	}
}

func (c *Consumer) Handle(table string, handler Handler) *Consumer {
	c.handlers[table] = handler
	return c
}

func (c *Consumer) Consume(ctx context.Context) *Consumer {
	for table, handler := range c.handlers {
		c.wg.Add(1)
		go func(table string, handler Handler) {
			defer c.wg.Done()
			c.consumeTable(ctx, table, handler)
		}(table, handler)
	}
	return c
}

func (c *Consumer) Close() {
	c.wg.Wait()
}

func (c *Consumer) consumeTable(ctx context.Context, table string, handler Handler) {
	streamArn, err := c.resolveStreamArn(ctx, table)
	for err != nil {
		log.Printf("[consumer][events] resolve stream failed table=%s err=%v", table, err)
		if !c.sleep(ctx) {
			return
		}
		streamArn, err = c.resolveStreamArn(ctx, table)
	}
	log.Printf("[consumer][events] consuming stream table=%s arn=%s", table, streamArn)

	iterators := make(map[string]string)
	seen := make(map[string]bool)
	iterType := streamtypes.ShardIteratorTypeLatest
	for {
		select {
		case <-ctx.Done():
			log.Printf("[consumer][events] stopping table=%s", table)
			return
		default:
		}

		if err := c.refreshShards(ctx, streamArn, iterators, seen, iterType); err != nil {
			log.Printf("[consumer][events] list shards failed table=%s err=%v", table, err)
		} else {
			iterType = streamtypes.ShardIteratorTypeTrimHorizon
		}

		for shardID, iterator := range iterators {
			out, err := c.streams.GetRecords(ctx, &dynamodbstreams.GetRecordsInput{
				ShardIterator: aws.String(iterator),
			})
			if err != nil {
				log.Printf("[consumer][events] get records failed table=%s shard=%s err=%v", table, shardID, err)
				// Drop the shard entirely so the next refresh resubscribes
				// from TRIM_HORIZON. Handlers tolerate redelivery.
				delete(iterators, shardID)
				delete(seen, shardID)
				continue
			}

			for _, record := range out.Records {
				if err := handler(ctx, record); err != nil {
					log.Printf("[consumer][events] handler failed table=%s shard=%s err=%v", table, shardID, err)
				}
			}

			if out.NextShardIterator == nil {
				// Shard closed; children show up on the next refresh.
				delete(iterators, shardID)
				continue
			}
			iterators[shardID] = *out.NextShardIterator
		}

		if !c.sleep(ctx) {
			return
		}
	}
}

func (c *Consumer) resolveStreamArn(ctx context.Context, table string) (string, error) {
	out, err := c.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.Table.LatestStreamArn), nil
}

func (c *Consumer) refreshShards(ctx context.Context, streamArn string, iterators map[string]string, seen map[string]bool, iterType streamtypes.ShardIteratorType) error {
	out, err := c.streams.DescribeStream(ctx, &dynamodbstreams.DescribeStreamInput{
		StreamArn: aws.String(streamArn),
	})
	if err != nil {
		return err
	}

	for _, shard := range out.StreamDescription.Shards {
		shardID := aws.ToString(shard.ShardId)
		// Closed shards stay in seen so a finished shard is never re-read.
		if seen[shardID] {
			continue
		}
		iter, err := c.streams.GetShardIterator(ctx, &dynamodbstreams.GetShardIteratorInput{
			StreamArn:         aws.String(streamArn),
			ShardId:           shard.ShardId,
			ShardIteratorType: iterType,
		})
		if err != nil {
			return err
		}
		seen[shardID] = true
		iterators[shardID] = aws.ToString(iter.ShardIterator)
	}
	return nil
}

func (c *Consumer) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.pollInterval):
		return true
	}
}
