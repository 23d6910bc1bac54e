package response

import (
	"time"

	"editora_prisma/internal/domain/entities"
)

type ClientResponse struct {
	ID           string    `json:"id"`
	ClientNumber int       `json:"client_number,omitempty"`
	Kind         string    `json:"kind"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Document     string    `json:"document,omitempty"`
	Status       string    `json:"status"`
	Address      string    `json:"address,omitempty"`
	Origin       string    `json:"origin,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		ClientNumber: c.ClientNumber,
		Kind:         string(c.Kind),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Document:     c.Document,
		Status:       string(c.Status),
		Address:      c.Address,
		Origin:       c.Origin,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
