package response

import (
	"time"

	"editora_prisma/internal/domain/entities"
)

type ScheduleEntryResponse struct {
	Installment int       `json:"installment"`
	Value       float64   `json:"value"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
}

type OrderResponse struct {
	ID        string                  `json:"id"`
	QuoteID   string                  `json:"quote_id"`
	ClientID  string                  `json:"client_id,omitempty"`
	ProjectID string                  `json:"project_id"`
	Total     float64                 `json:"total"`
	Schedule  []ScheduleEntryResponse `json:"schedule"`
	Status    string                  `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID,
		QuoteID:   o.QuoteID,
		ClientID:  o.ClientID,
		ProjectID: o.ProjectID,
		Total:     o.Total,
		Schedule:  make([]ScheduleEntryResponse, 0, len(o.Schedule)),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	for _, entry := range o.Schedule {
		resp.Schedule = append(resp.Schedule, ScheduleEntryResponse{
			Installment: entry.Installment,
			Value:       entry.Value,
			DueDate:     entry.DueDate,
			Status:      string(entry.Status),
		})
	}
	return resp
}
