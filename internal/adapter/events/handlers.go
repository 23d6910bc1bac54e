package events

import (
	"context"
	"fmt"
	"log"
	"time"

	"editora_prisma/internal/adapter/persistence/repository"
	"editora_prisma/internal/domain/entities"
	"editora_prisma/pkg/metrics"

	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

type QuoteNumberAssigner interface {
	AssignNumber(ctx context.Context, id string, now time.Time) error
}

type QuoteStatusChangeHandler interface {
	HandleStatusChange(ctx context.Context, before, after entities.Quote) error
}

type ClientNumberAssigner interface {
	AssignNumber(ctx context.Context, id string) (int, error)
}

// QuoteEventHandler reacts to quote table changes: inserts receive a
// sequential quote number and modifications feed the approval cascade.
type QuoteEventHandler struct {
	numbers   QuoteNumberAssigner
	approvals QuoteStatusChangeHandler
}

func NewQuoteEventHandler(numbers QuoteNumberAssigner, approvals QuoteStatusChangeHandler) *QuoteEventHandler {
	return &QuoteEventHandler{numbers: numbers, approvals: approvals}
}

func (h *QuoteEventHandler) OnRecord(ctx context.Context, record streamtypes.Record) error {
	switch record.EventName {
	case streamtypes.OperationTypeInsert:
		return h.onInsert(ctx, record)
	case streamtypes.OperationTypeModify:
		return h.onModify(ctx, record)
	default:
		return nil
	}
}

func (h *QuoteEventHandler) onInsert(ctx context.Context, record streamtypes.Record) error {
	if record.Dynamodb == nil {
		metrics.StreamDecodeFailures.Add(1)
		return fmt.Errorf("quote stream record %s has no payload", recordID(record))
	}
	quote, err := repository.QuoteFromStreamImage(record.Dynamodb.NewImage)
	if err != nil {
		metrics.StreamDecodeFailures.Add(1)
		return fmt.Errorf("decode quote stream image: %w", err)
	}
	if quote.Number != "" {
		return nil
	}

	if err := h.numbers.AssignNumber(ctx, quote.ID, time.Now()); err != nil {
		metrics.QuoteNumberFailures.Add(1)
		return fmt.Errorf("assign number to quote %s: %w", quote.ID, err)
	}
	log.Printf("[quote_handler][events] quote numbered id=%s", quote.ID)
	return nil
}

func (h *QuoteEventHandler) onModify(ctx context.Context, record streamtypes.Record) error {
	if record.Dynamodb == nil {
		metrics.StreamDecodeFailures.Add(1)
		return fmt.Errorf("quote stream record %s has no payload", recordID(record))
	}
	before, err := repository.QuoteFromStreamImage(record.Dynamodb.OldImage)
	if err != nil {
		metrics.StreamDecodeFailures.Add(1)
		return fmt.Errorf("decode quote old image: %w", err)
	}
	after, err := repository.QuoteFromStreamImage(record.Dynamodb.NewImage)
	if err != nil {
		metrics.StreamDecodeFailures.Add(1)
		return fmt.Errorf("decode quote new image: %w", err)
	}

	if err := h.approvals.HandleStatusChange(ctx, before, after); err != nil {
		metrics.CascadeFailures.Add(1)
		return fmt.Errorf("approval cascade for quote %s: %w", after.ID, err)
	}
	return nil
}

// ClientEventHandler numbers freshly created clients.
type ClientEventHandler struct {
	numbers ClientNumberAssigner
}

func NewClientEventHandler(numbers ClientNumberAssigner) *ClientEventHandler {
	return &ClientEventHandler{numbers: numbers}
}

func (h *ClientEventHandler) OnRecord(ctx context.Context, record streamtypes.Record) error {
	if record.EventName != streamtypes.OperationTypeInsert {
		return nil
	}
	if record.Dynamodb == nil {
		metrics.StreamDecodeFailures.Add(1)
		return fmt.Errorf("client stream record %s has no payload", recordID(record))
	}

	client, err := repository.ClientFromStreamImage(record.Dynamodb.NewImage)
	if err != nil {
		metrics.StreamDecodeFailures.Add(1)
		return fmt.Errorf("decode client stream image: %w", err)
	}
	if client.ClientNumber != 0 {
		return nil
	}

	number, err := h.numbers.AssignNumber(ctx, client.ID)
	if err != nil {
		metrics.ClientNumberFailures.Add(1)
		return fmt.Errorf("assign number to client %s: %w", client.ID, err)
	}
	log.Printf("[client_handler][events] client numbered id=%s number=%d", client.ID, number)
	return nil
}

func recordID(record streamtypes.Record) string {
	if record.EventID == nil {
		return "<unknown>"
	}
	return *record.EventID
}
