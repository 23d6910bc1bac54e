package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - rascunho -> enviado -> assinado|recusado|expirado.
//   - Once in a terminal state the quote is immutable except for appended
//     result references (pdf_url and the ids created by the approval flow).

type QuoteStatus string

const (
	QuoteStatusRascunho QuoteStatus = "rascunho"
	QuoteStatusEnviado  QuoteStatus = "enviado"
	QuoteStatusAssinado QuoteStatus = "assinado"
	QuoteStatusRecusado QuoteStatus = "recusado"
	QuoteStatusExpirado QuoteStatus = "expirado"
)

type QuoteItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type QuoteTotals struct {
	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	Tax        float64 `json:"tax"`
	Freight    float64 `json:"freight"`
	GrandTotal float64 `json:"grand_total"`
}

// QuoteContact is inline contact data for quotes issued before the prospect
// becomes a registered client. The approval flow turns it into a Client.
type QuoteContact struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PaymentPlan describes how the quote total is collected. A nil plan or an
// installment count <= 1 means a single lump-sum payment.
type PaymentPlan struct {
	Installments int `json:"installments"`
	DueDay       int `json:"due_day,omitempty"`
}

// Quote is a priced proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Number is stamped by a background handler on creation (format 5MMDD.HHmm)
// and never overwritten once present. ClientID/ProjectID/OrderID are filled
// by the approval flow after the quote is signed.
type Quote struct {
	ID           string        `json:"id"`
	Number       string        `json:"number,omitempty"`
	ClientID     string        `json:"client_id,omitempty"`
	Contact      *QuoteContact `json:"contact,omitempty"`
	ProjectTitle string        `json:"project_title,omitempty"`
	ProductType  string        `json:"product_type,omitempty"`
	Status       QuoteStatus   `json:"status"`
	Items        []QuoteItem   `json:"items"`
	Totals       QuoteTotals   `json:"totals"`
	PaymentPlan  *PaymentPlan  `json:"payment_plan,omitempty"`
	ValidUntil   time.Time     `json:"valid_until,omitempty"`
	PDFURL       string        `json:"pdf_url,omitempty"`
	ProjectID    string        `json:"project_id,omitempty"`
	OrderID      string        `json:"order_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// HasContact reports whether the quote carries usable inline contact data.
func (q Quote) HasContact() bool {
	return q.Contact != nil && (q.Contact.Name != "" || q.Contact.Email != "" || q.Contact.Phone != "")
}
