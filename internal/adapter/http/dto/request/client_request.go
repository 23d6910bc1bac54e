package request

import (
	"editora_prisma/internal/domain/entities"
)

type ClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Kind     string `json:"kind"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Address  string `json:"address"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:     r.Name,
		Kind:     entities.ClientKind(r.Kind),
		Email:    r.Email,
		Phone:    r.Phone,
		Document: r.Document,
		Address:  r.Address,
	}
}

type ClientStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
