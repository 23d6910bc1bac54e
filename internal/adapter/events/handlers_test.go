package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"editora_prisma/internal/domain/entities"

	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

type fakeQuoteNumbers struct {
	calls []string
	err   error
}

func (f *fakeQuoteNumbers) AssignNumber(_ context.Context, id string, _ time.Time) error {
	f.calls = append(f.calls, id)
	return f.err
}

type fakeApprovals struct {
	before entities.Quote
	after  entities.Quote
	calls  int
	err    error
}

func (f *fakeApprovals) HandleStatusChange(_ context.Context, before, after entities.Quote) error {
	f.before = before
	f.after = after
	f.calls++
	return f.err
}

type fakeClientNumbers struct {
	calls []string
	err   error
}

func (f *fakeClientNumbers) AssignNumber(_ context.Context, id string) (int, error) {
	f.calls = append(f.calls, id)
	if f.err != nil {
		return 0, f.err
	}
	return 7, nil
}

func quoteImage(id, number, status string) map[string]streamtypes.AttributeValue {
	image := map[string]streamtypes.AttributeValue{
		"id":          &streamtypes.AttributeValueMemberS{Value: id},
		"status":      &streamtypes.AttributeValueMemberS{Value: status},
		"subtotal":    &streamtypes.AttributeValueMemberN{Value: "1200"},
		"grand_total": &streamtypes.AttributeValueMemberN{Value: "1200"},
		"created_at":  &streamtypes.AttributeValueMemberS{Value: "2026-03-07T14:05:00Z"},
		"updated_at":  &streamtypes.AttributeValueMemberS{Value: "2026-03-07T14:05:00Z"},
	}
	if number != "" {
		image["number"] = &streamtypes.AttributeValueMemberS{Value: number}
	}
	return image
}

func clientImage(id string, number int) map[string]streamtypes.AttributeValue {
	image := map[string]streamtypes.AttributeValue{
		"id":         &streamtypes.AttributeValueMemberS{Value: id},
		"kind":       &streamtypes.AttributeValueMemberS{Value: "pf"},
		"name":       &streamtypes.AttributeValueMemberS{Value: "Ana Souza"},
		"status":     &streamtypes.AttributeValueMemberS{Value: "ativo"},
		"created_at": &streamtypes.AttributeValueMemberS{Value: "2026-03-07T14:05:00Z"},
		"updated_at": &streamtypes.AttributeValueMemberS{Value: "2026-03-07T14:05:00Z"},
	}
	if number != 0 {
		image["client_number"] = &streamtypes.AttributeValueMemberN{Value: "7"}
	}
	return image
}

func insertRecord(image map[string]streamtypes.AttributeValue) streamtypes.Record {
	return streamtypes.Record{
		EventName: streamtypes.OperationTypeInsert,
		Dynamodb:  &streamtypes.StreamRecord{NewImage: image},
	}
}

func modifyRecord(oldImage, newImage map[string]streamtypes.AttributeValue) streamtypes.Record {
	return streamtypes.Record{
		EventName: streamtypes.OperationTypeModify,
		Dynamodb:  &streamtypes.StreamRecord{OldImage: oldImage, NewImage: newImage},
	}
}

func TestQuoteEventHandler_OnRecord(t *testing.T) {
	t.Run("insert numbers the quote", func(t *testing.T) {
		numbers := &fakeQuoteNumbers{}
		h := NewQuoteEventHandler(numbers, &fakeApprovals{})

		if err := h.OnRecord(context.Background(), insertRecord(quoteImage("q-1", "", "rascunho"))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(numbers.calls) != 1 || numbers.calls[0] != "q-1" {
			t.Fatalf("expected one assign call for q-1, got %v", numbers.calls)
		}
	})

	t.Run("insert with a number already present is a no-op", func(t *testing.T) {
		numbers := &fakeQuoteNumbers{}
		h := NewQuoteEventHandler(numbers, &fakeApprovals{})

		if err := h.OnRecord(context.Background(), insertRecord(quoteImage("q-1", "50307.1405", "rascunho"))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(numbers.calls) != 0 {
			t.Fatalf("expected no assign calls, got %v", numbers.calls)
		}
	})

	t.Run("assign failure surfaces", func(t *testing.T) {
		numbers := &fakeQuoteNumbers{err: errors.New("db")}
		h := NewQuoteEventHandler(numbers, &fakeApprovals{})

		err := h.OnRecord(context.Background(), insertRecord(quoteImage("q-1", "", "rascunho")))
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("modify forwards both images to the approval handler", func(t *testing.T) {
		approvals := &fakeApprovals{}
		h := NewQuoteEventHandler(&fakeQuoteNumbers{}, approvals)

		record := modifyRecord(
			quoteImage("q-1", "50307.1405", "enviado"),
			quoteImage("q-1", "50307.1405", "assinado"),
		)
		if err := h.OnRecord(context.Background(), record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if approvals.calls != 1 {
			t.Fatalf("expected one cascade call, got %d", approvals.calls)
		}
		if approvals.before.Status != entities.QuoteStatusEnviado || approvals.after.Status != entities.QuoteStatusAssinado {
			t.Fatalf("unexpected statuses before=%s after=%s", approvals.before.Status, approvals.after.Status)
		}
		if approvals.after.ID != "q-1" || approvals.after.Totals.GrandTotal != 1200 {
			t.Fatalf("unexpected decoded quote: %+v", approvals.after)
		}
	})

	t.Run("cascade failure surfaces", func(t *testing.T) {
		approvals := &fakeApprovals{err: errors.New("tx")}
		h := NewQuoteEventHandler(&fakeQuoteNumbers{}, approvals)

		record := modifyRecord(
			quoteImage("q-1", "", "enviado"),
			quoteImage("q-1", "", "assinado"),
		)
		if err := h.OnRecord(context.Background(), record); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("insert without a payload errors instead of panicking", func(t *testing.T) {
		numbers := &fakeQuoteNumbers{}
		approvals := &fakeApprovals{}
		h := NewQuoteEventHandler(numbers, approvals)

		record := streamtypes.Record{EventName: streamtypes.OperationTypeInsert}
		if err := h.OnRecord(context.Background(), record); err == nil {
			t.Fatalf("expected error")
		}
		if len(numbers.calls) != 0 || approvals.calls != 0 {
			t.Fatalf("expected no calls")
		}
	})

	t.Run("modify without a payload errors instead of panicking", func(t *testing.T) {
		approvals := &fakeApprovals{}
		h := NewQuoteEventHandler(&fakeQuoteNumbers{}, approvals)

		record := streamtypes.Record{EventName: streamtypes.OperationTypeModify}
		if err := h.OnRecord(context.Background(), record); err == nil {
			t.Fatalf("expected error")
		}
		if approvals.calls != 0 {
			t.Fatalf("expected no cascade calls, got %d", approvals.calls)
		}
	})

	t.Run("remove events are ignored", func(t *testing.T) {
		numbers := &fakeQuoteNumbers{}
		approvals := &fakeApprovals{}
		h := NewQuoteEventHandler(numbers, approvals)

		record := streamtypes.Record{EventName: streamtypes.OperationTypeRemove}
		if err := h.OnRecord(context.Background(), record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(numbers.calls) != 0 || approvals.calls != 0 {
			t.Fatalf("expected no calls")
		}
	})
}

func TestClientEventHandler_OnRecord(t *testing.T) {
	t.Run("insert numbers the client", func(t *testing.T) {
		numbers := &fakeClientNumbers{}
		h := NewClientEventHandler(numbers)

		if err := h.OnRecord(context.Background(), insertRecord(clientImage("c-1", 0))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(numbers.calls) != 1 || numbers.calls[0] != "c-1" {
			t.Fatalf("expected one assign call for c-1, got %v", numbers.calls)
		}
	})

	t.Run("already numbered client is a no-op", func(t *testing.T) {
		numbers := &fakeClientNumbers{}
		h := NewClientEventHandler(numbers)

		if err := h.OnRecord(context.Background(), insertRecord(clientImage("c-1", 7))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(numbers.calls) != 0 {
			t.Fatalf("expected no assign calls, got %v", numbers.calls)
		}
	})

	t.Run("modify events are ignored", func(t *testing.T) {
		numbers := &fakeClientNumbers{}
		h := NewClientEventHandler(numbers)

		record := modifyRecord(clientImage("c-1", 0), clientImage("c-1", 7))
		if err := h.OnRecord(context.Background(), record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(numbers.calls) != 0 {
			t.Fatalf("expected no assign calls, got %v", numbers.calls)
		}
	})

	t.Run("insert without a payload errors instead of panicking", func(t *testing.T) {
		numbers := &fakeClientNumbers{}
		h := NewClientEventHandler(numbers)

		record := streamtypes.Record{EventName: streamtypes.OperationTypeInsert}
		if err := h.OnRecord(context.Background(), record); err == nil {
			t.Fatalf("expected error")
		}
		if len(numbers.calls) != 0 {
			t.Fatalf("expected no assign calls, got %v", numbers.calls)
		}
	})

	t.Run("counter failure surfaces", func(t *testing.T) {
		numbers := &fakeClientNumbers{err: errors.New("tx")}
		h := NewClientEventHandler(numbers)

		if err := h.OnRecord(context.Background(), insertRecord(clientImage("c-1", 0))); err == nil {
			t.Fatalf("expected error")
		}
	})
}
