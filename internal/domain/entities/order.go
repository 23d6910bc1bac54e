package entities

import "time"

type OrderStatus string

const (
	OrderStatusAberto    OrderStatus = "aberto"
	OrderStatusFechado   OrderStatus = "fechado"
	OrderStatusCancelado OrderStatus = "cancelado"
)

type InstallmentStatus string

const (
	InstallmentStatusPendente InstallmentStatus = "pendente"
	InstallmentStatusPago     InstallmentStatus = "pago"
	InstallmentStatusVencido  InstallmentStatus = "vencido"
)

// ScheduleEntry is one installment of an order's payment schedule.
// Installment is 1-based.
type ScheduleEntry struct {
	Installment int               `json:"installment"`
	Value       float64           `json:"value"`
	DueDate     time.Time         `json:"due_date"`
	Status      InstallmentStatus `json:"status"`
}

// Order is the commercial commitment derived from a signed quote. It is
// created exactly once per signed quote by the approval flow, never directly
// by a user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
type Order struct {
	ID        string          `json:"id"`
	QuoteID   string          `json:"quote_id"`
	ClientID  string          `json:"client_id,omitempty"`
	ProjectID string          `json:"project_id"`
	Total     float64         `json:"total"`
	Schedule  []ScheduleEntry `json:"schedule"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
