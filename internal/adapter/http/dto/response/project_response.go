package response

import (
	"time"

	"editora_prisma/internal/domain/entities"
)

type ProjectResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id,omitempty"`
	Title       string    `json:"title"`
	ProductType string    `json:"product_type"`
	Status      string    `json:"status"`
	Budget      float64   `json:"budget"`
	QuoteID     string    `json:"quote_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Title:       p.Title,
		ProductType: p.ProductType,
		Status:      string(p.Status),
		Budget:      p.Budget,
		QuoteID:     p.QuoteID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
