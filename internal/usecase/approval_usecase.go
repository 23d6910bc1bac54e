package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IApprovalUseCase runs the approval pipeline for a quote status change.
//
// HandleStatusChange receives the quote document as it looked before and
// after an update event and is a no-op unless the status field crossed into
// assinado on exactly that edge. A re-save of an already signed quote (other
// fields changed, status unchanged) must not re-run the pipeline.

type IApprovalUseCase interface {
	HandleStatusChange(ctx context.Context, before, after entities.Quote) error
}

type ApprovalUseCase struct {
	writer interfaces.IApprovalWriter
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(writer interfaces.IApprovalWriter) *ApprovalUseCase {
	return &ApprovalUseCase{writer: writer}
}

func (u *ApprovalUseCase) HandleStatusChange(ctx context.Context, before, after entities.Quote) error {
	if before.Status == entities.QuoteStatusAssinado || after.Status != entities.QuoteStatusAssinado {
		return nil
	}
	if after.ID == "" {
		return ErrInvalidQuoteID
	}

	log.Printf("[approval][usecase] cascade start quote_id=%s from=%s to=%s", after.ID, before.Status, after.Status)

	bundle := buildApprovalBundle(after, time.Now().UTC())

	applied, err := u.writer.Apply(ctx, bundle)
	if err != nil {
		return err
	}
	if !applied {
		log.Printf("[approval][usecase] cascade already applied quote_id=%s", after.ID)
		return nil
	}

	log.Printf("[approval][usecase] cascade done quote_id=%s client_id=%s project_id=%s order_id=%s invoices=%d",
		after.ID, bundle.ClientID, bundle.Project.ID, bundle.Order.ID, len(bundle.Invoices))
	return nil
}

// buildApprovalBundle derives every document the signed quote produces. Pure
// given now; the transactional write is the writer's job.
func buildApprovalBundle(q entities.Quote, now time.Time) entities.ApprovalBundle {
	bundle := entities.ApprovalBundle{QuoteID: q.ID}

	// 1. Resolve the client: reuse the referenced one, or mint a new client
	// from the inline contact data. The new client's sequential number is
	// stamped later by the counter handler reacting to its creation.
	bundle.ClientID = strings.TrimSpace(q.ClientID)
	clientName := ""
	if bundle.ClientID == "" && q.HasContact() {
		c := entities.Client{
			ID:        uuid.NewString(),
			Kind:      entities.ClientKindPF,
			Name:      q.Contact.Name,
			Email:     q.Contact.Email,
			Phone:     q.Contact.Phone,
			Status:    entities.ClientStatusAtivo,
			Origin:    entities.ClientOriginOrcamento,
			CreatedAt: now,
			UpdatedAt: now,
		}
		bundle.NewClient = &c
		bundle.ClientID = c.ID
		clientName = c.Name
	}

	// 2. Project.
	title := strings.TrimSpace(q.ProjectTitle)
	if title == "" {
		title = strings.TrimSpace(clientName)
	}
	if title == "" {
		title = entities.UntitledProjectTitle
	}
	productType := strings.TrimSpace(q.ProductType)
	if productType == "" {
		productType = entities.DefaultProductType
	}
	bundle.Project = entities.Project{
		ID:          uuid.NewString(),
		ClientID:    bundle.ClientID,
		Title:       title,
		ProductType: productType,
		Status:      entities.ProjectStatusBriefing,
		Budget:      q.Totals.GrandTotal,
		QuoteID:     q.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 3+4. Payment schedule and order.
	schedule := BuildSchedule(q.Totals.GrandTotal, q.PaymentPlan, now)
	bundle.Order = entities.Order{
		ID:        uuid.NewString(),
		QuoteID:   q.ID,
		ClientID:  bundle.ClientID,
		ProjectID: bundle.Project.ID,
		Total:     q.Totals.GrandTotal,
		Schedule:  schedule,
		Status:    entities.OrderStatusAberto,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 5. One invoice per schedule entry. CatalogCode stays nil until the
	// fiscal integration fills it.
	bundle.Invoices = make([]entities.Invoice, 0, len(schedule))
	for _, entry := range schedule {
		bundle.Invoices = append(bundle.Invoices, entities.Invoice{
			ID:               uuid.NewString(),
			OrderID:          bundle.Order.ID,
			ProjectID:        bundle.Project.ID,
			ClientID:         bundle.ClientID,
			Value:            entry.Value,
			DueDate:          entry.DueDate,
			Installment:      entry.Installment,
			InstallmentCount: len(schedule),
			Status:           entities.InvoiceStatusPendente,
			CatalogCode:      nil,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	return bundle
}
