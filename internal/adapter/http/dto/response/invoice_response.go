package response

import (
	"time"

	"editora_prisma/internal/domain/entities"
)

type InvoiceResponse struct {
	ID               string     `json:"id"`
	OrderID          string     `json:"order_id"`
	ProjectID        string     `json:"project_id,omitempty"`
	ClientID         string     `json:"client_id,omitempty"`
	Value            float64    `json:"value"`
	DueDate          time.Time  `json:"due_date"`
	Installment      int        `json:"installment"`
	InstallmentCount int        `json:"installment_count"`
	Status           string     `json:"status"`
	CatalogCode      *string    `json:"catalog_code"`
	PaymentID        string     `json:"payment_id,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:               inv.ID,
		OrderID:          inv.OrderID,
		ProjectID:        inv.ProjectID,
		ClientID:         inv.ClientID,
		Value:            inv.Value,
		DueDate:          inv.DueDate,
		Installment:      inv.Installment,
		InstallmentCount: inv.InstallmentCount,
		Status:           string(inv.Status),
		CatalogCode:      inv.CatalogCode,
		PaymentID:        inv.PaymentID,
		PaidAt:           inv.PaidAt,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
