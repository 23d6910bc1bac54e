package request

import (
	"time"

	"editora_prisma/internal/domain/entities"
)

type QuoteItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

type QuoteContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PaymentPlanRequest struct {
	Installments int `json:"installments" binding:"required"`
	DueDay       int `json:"due_day"`
}

// QuoteRequest accepts either a registered client_id or inline contact data.
// Line totals and grand total are computed server-side.
type QuoteRequest struct {
	ClientID     string               `json:"client_id"`
	Contact      *QuoteContactRequest `json:"contact"`
	ProjectTitle string               `json:"project_title"`
	ProductType  string               `json:"product_type"`
	Items        []QuoteItemRequest   `json:"items" binding:"required"`
	Discount     float64              `json:"discount"`
	Tax          float64              `json:"tax"`
	Freight      float64              `json:"freight"`
	PaymentPlan  *PaymentPlanRequest  `json:"payment_plan"`
	ValidUntil   time.Time            `json:"valid_until"`
}

func (r QuoteRequest) ToEntity() entities.Quote {
	q := entities.Quote{
		ClientID:     r.ClientID,
		ProjectTitle: r.ProjectTitle,
		ProductType:  r.ProductType,
		Totals: entities.QuoteTotals{
			Discount: r.Discount,
			Tax:      r.Tax,
			Freight:  r.Freight,
		},
		ValidUntil: r.ValidUntil,
	}

	for _, item := range r.Items {
		q.Items = append(q.Items, entities.QuoteItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	if r.Contact != nil {
		q.Contact = &entities.QuoteContact{
			Name:  r.Contact.Name,
			Email: r.Contact.Email,
			Phone: r.Contact.Phone,
		}
	}

	if r.PaymentPlan != nil {
		q.PaymentPlan = &entities.PaymentPlan{
			Installments: r.PaymentPlan.Installments,
			DueDay:       r.PaymentPlan.DueDay,
		}
	}

	return q
}
