package response

import (
	"time"

	"editora_prisma/internal/domain/entities"
)

type QuoteItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type QuoteTotalsResponse struct {
	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	Tax        float64 `json:"tax"`
	Freight    float64 `json:"freight"`
	GrandTotal float64 `json:"grand_total"`
}

type QuoteContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type PaymentPlanResponse struct {
	Installments int `json:"installments"`
	DueDay       int `json:"due_day,omitempty"`
}

type QuoteResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"number,omitempty"`
	ClientID     string                `json:"client_id,omitempty"`
	Contact      *QuoteContactResponse `json:"contact,omitempty"`
	ProjectTitle string                `json:"project_title,omitempty"`
	ProductType  string                `json:"product_type,omitempty"`
	Status       string                `json:"status"`
	Items        []QuoteItemResponse   `json:"items"`
	Totals       QuoteTotalsResponse   `json:"totals"`
	PaymentPlan  *PaymentPlanResponse  `json:"payment_plan,omitempty"`
	ValidUntil   *time.Time            `json:"valid_until,omitempty"`
	PDFURL       string                `json:"pdf_url,omitempty"`
	ProjectID    string                `json:"project_id,omitempty"`
	OrderID      string                `json:"order_id,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:           q.ID,
		Number:       q.Number,
		ClientID:     q.ClientID,
		ProjectTitle: q.ProjectTitle,
		ProductType:  q.ProductType,
		Status:       string(q.Status),
		Items:        make([]QuoteItemResponse, 0, len(q.Items)),
		Totals: QuoteTotalsResponse{
			Subtotal:   q.Totals.Subtotal,
			Discount:   q.Totals.Discount,
			Tax:        q.Totals.Tax,
			Freight:    q.Totals.Freight,
			GrandTotal: q.Totals.GrandTotal,
		},
		PDFURL:    q.PDFURL,
		ProjectID: q.ProjectID,
		OrderID:   q.OrderID,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}

	for _, item := range q.Items {
		resp.Items = append(resp.Items, QuoteItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	if q.Contact != nil {
		resp.Contact = &QuoteContactResponse{
			Name:  q.Contact.Name,
			Email: q.Contact.Email,
			Phone: q.Contact.Phone,
		}
	}

	if q.PaymentPlan != nil {
		resp.PaymentPlan = &PaymentPlanResponse{
			Installments: q.PaymentPlan.Installments,
			DueDay:       q.PaymentPlan.DueDay,
		}
	}

	if !q.ValidUntil.IsZero() {
		v := q.ValidUntil
		resp.ValidUntil = &v
	}

	return resp
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
