package entities

import "time"

type ClientKind string

const (
	ClientKindPF ClientKind = "pf"
	ClientKindPJ ClientKind = "pj"
)

type ClientStatus string

const (
	ClientStatusAtivo   ClientStatus = "ativo"
	ClientStatusInativo ClientStatus = "inativo"
)

// ClientOriginOrcamento marks clients created automatically by the quote
// approval flow, as opposed to clients registered by a user.
const ClientOriginOrcamento = "orcamento"

// Client is a confirmed business relationship.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ClientNumber is a sequential display number assigned by a background
// handler from a shared counter document; it is 0 until that handler runs.
type Client struct {
	ID           string       `json:"id"`
	ClientNumber int          `json:"client_number,omitempty"`
	Kind         ClientKind   `json:"kind"`
	Name         string       `json:"name"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Document     string       `json:"document,omitempty"` // CPF or CNPJ
	Status       ClientStatus `json:"status"`
	Address      string       `json:"address,omitempty"`
	Origin       string       `json:"origin,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
