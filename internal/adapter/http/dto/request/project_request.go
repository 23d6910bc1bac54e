package request

import (
	"editora_prisma/internal/domain/entities"
)

type ProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	ClientID    string  `json:"client_id"`
	ProductType string  `json:"product_type"`
	Budget      float64 `json:"budget"`
}

func (r ProjectRequest) ToEntity() entities.Project {
	return entities.Project{
		Title:       r.Title,
		ClientID:    r.ClientID,
		ProductType: r.ProductType,
		Budget:      r.Budget,
	}
}

type ProjectStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
