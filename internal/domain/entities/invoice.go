package entities

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPendente InvoiceStatus = "pendente"
	InvoiceStatusPago     InvoiceStatus = "pago"
	InvoiceStatusVencido  InvoiceStatus = "vencido"
)

// Invoice is one charge per payment-schedule installment, created in a batch
// by the approval flow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// CatalogCode is a nil placeholder filled later by the fiscal integration.
// PaymentID/PaidAt are set when a payment is collected for the invoice.
type Invoice struct {
	ID               string        `json:"id"`
	OrderID          string        `json:"order_id"`
	ProjectID        string        `json:"project_id,omitempty"`
	ClientID         string        `json:"client_id,omitempty"`
	Value            float64       `json:"value"`
	DueDate          time.Time     `json:"due_date"`
	Installment      int           `json:"installment"`
	InstallmentCount int           `json:"installment_count"`
	Status           InvoiceStatus `json:"status"`
	CatalogCode      *string       `json:"catalog_code"`
	PaymentID        string        `json:"payment_id,omitempty"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
