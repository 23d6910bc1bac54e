package request

import (
	"editora_prisma/internal/domain/entities"
)

type LeadRequest struct {
	Name    string   `json:"name" binding:"required"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Source  string   `json:"source"`
	Tags    []string `json:"tags"`
	OwnerID string   `json:"owner_id"`
}

func (r LeadRequest) ToEntity() entities.Lead {
	return entities.Lead{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Source:  entities.LeadSource(r.Source),
		Tags:    r.Tags,
		OwnerID: r.OwnerID,
	}
}

type LeadStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}
