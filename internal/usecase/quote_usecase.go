package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteItems  = errors.New("quote has no valid items")
	ErrQuoteNotTransition = errors.New("quote is not in the expected status for this action")
)

// QuoteNumberPrefix is the fixed version digit leading every quote number.
const QuoteNumberPrefix = "5"

// IQuoteUseCase exposes quote (orçamento) operations.
//
// Status actions are conditional transitions: Send moves rascunho->enviado,
// Approve moves enviado->assinado, Reject moves enviado->recusado. The
// approval side effects (client/project/order/invoices) are NOT performed
// here; they run in the background when the status change shows up on the
// quotes change stream.

type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Send(ctx context.Context, id string) (entities.Quote, error)
	Approve(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
	AssignNumber(ctx context.Context, id string, now time.Time) error
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if len(q.Items) == 0 {
		return entities.Quote{}, ErrInvalidQuoteItems
	}

	subtotal := 0.0
	for i := range q.Items {
		it := &q.Items[i]
		if it.Quantity <= 0 || it.UnitPrice < 0 {
			return entities.Quote{}, ErrInvalidQuoteItems
		}
		it.Total = float64(it.Quantity) * it.UnitPrice
		subtotal += it.Total
	}
	q.Totals.Subtotal = subtotal
	q.Totals.GrandTotal = subtotal - q.Totals.Discount + q.Totals.Tax + q.Totals.Freight

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	// Number is stamped by the background assigner once the created document
	// shows up on the change stream.
	q.Number = ""
	q.Status = entities.QuoteStatusRascunho
	q.ProjectID = ""
	q.OrderID = ""
	q.PDFURL = ""
	q.CreatedAt = now
	q.UpdatedAt = now

	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) Send(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusRascunho, entities.QuoteStatusEnviado)
}

func (u *QuoteUseCase) Approve(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusEnviado, entities.QuoteStatusAssinado)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusEnviado, entities.QuoteStatusRecusado)
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		// Either the quote does not exist or it already left `from`. The
		// repository cannot tell the two apart cheaply; disambiguate here so
		// callers get a useful error.
		existing, gErr := u.repo.GetByID(ctx, id)
		if gErr != nil {
			return entities.Quote{}, gErr
		}
		if existing.ID == "" {
			return entities.Quote{}, ErrQuoteNotFound
		}
		return entities.Quote{}, ErrQuoteNotTransition
	}
	return updated, nil
}

// AssignNumber stamps the sequential display number on a freshly created
// quote. Idempotent: a quote that already carries a number is left untouched.
// Failures are the caller's to log and count.
func (u *QuoteUseCase) AssignNumber(ctx context.Context, id string, now time.Time) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	number := FormatQuoteNumber(now)
	applied, err := u.repo.SetNumberIfAbsent(ctx, id, number)
	if err != nil {
		return err
	}
	if !applied {
		log.Printf("[quote][usecase] number already assigned quote_id=%s", id)
	}
	return nil
}

// FormatQuoteNumber builds the display number <version><MM><DD>.<HH><mm>
// from wall-clock time. Two quotes created in the same minute get the same
// number; uniqueness is a display concern here, not an invariant.
func FormatQuoteNumber(now time.Time) string {
	now = now.UTC()
	return fmt.Sprintf("%s%02d%02d.%02d%02d", QuoteNumberPrefix, int(now.Month()), now.Day(), now.Hour(), now.Minute())
}
