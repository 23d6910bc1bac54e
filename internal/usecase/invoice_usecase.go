package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvalidInvoiceID   = errors.New("invalid invoice id")
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")
	ErrInvalidMPPayload   = errors.New("invalid mercado pago payload")
	ErrGatewayUnavailable = errors.New("payment gateway not configured")
)

// IInvoiceUseCase exposes invoice reads and payment collection.
//
// CollectPayment charges one installment invoice through the payment
// gateway (Mercado Pago) and marks it paid on success. The amount charged is
// always the invoice value stored in the database, never a caller-supplied
// figure.

type IInvoiceUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Invoice, error)
	CollectPayment(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo    interfaces.IInvoiceRepository
	gateway interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, gateway: gateway}
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Invoice, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func (u *InvoiceUseCase) CollectPayment(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		return entities.Invoice{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return entities.Invoice{}, ErrGatewayUnavailable
	}

	inv, err := u.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.Status == entities.InvoiceStatusPago {
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}

	// The invoice in DB is the source of truth for the amount, and
	// external_reference ties the provider event back to the invoice.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		return entities.Invoice{}, ErrInvalidMPPayload
	}
	reqMap["transaction_amount"] = inv.Value
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Fatura %d/%d do pedido %s", inv.Installment, inv.InstallmentCount, inv.OrderID)
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Invoice{}, err
	}

	log.Printf("[invoice][usecase] collecting payment invoice_id=%s value=%.2f", inv.ID, inv.Value)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[invoice][usecase] payment gateway failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] payment created invoice_id=%s provider_payment_id=%s provider_status=%s", inv.ID, providerPaymentID, providerStatus)

	paid, err := u.repo.MarkPaid(ctx, inv.ID, providerPaymentID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if paid.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return paid, nil
}
