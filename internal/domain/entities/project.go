package entities

import "time"

// ProjectStatus enumerates the fixed production stages of an editorial
// project.

type ProjectStatus string

const (
	ProjectStatusBriefing ProjectStatus = "briefing"
	ProjectStatusProducao ProjectStatus = "producao"
	ProjectStatusRevisao  ProjectStatus = "revisao"
	ProjectStatusEntregue ProjectStatus = "entregue"
)

// DefaultProductType is used when a quote carries no product-type code.
const DefaultProductType = "editorial"

// UntitledProjectTitle is the fallback title for projects created from quotes
// that carry neither a project title nor a client name.
const UntitledProjectTitle = "Projeto sem título"

// Project is a production unit of work, created by the approval flow or
// directly by a user.
//
// Storage model (DynamoDB):
//   - PK: id
type Project struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id,omitempty"`
	Title       string        `json:"title"`
	ProductType string        `json:"product_type"`
	Status      ProjectStatus `json:"status"`
	Budget      float64       `json:"budget"`
	QuoteID     string        `json:"quote_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ValidProjectStatus reports whether s is one of the known production stages.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusBriefing, ProjectStatusProducao, ProjectStatusRevisao, ProjectStatusEntregue:
		return true
	}
	return false
}
