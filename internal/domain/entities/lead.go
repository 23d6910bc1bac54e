package entities

import "time"

// LeadSource enumerates where a prospect came from.

type LeadSource string

const (
	LeadSourceIndicacao LeadSource = "indicacao"
	LeadSourceSite      LeadSource = "site"
	LeadSourceInstagram LeadSource = "instagram"
	LeadSourceEvento    LeadSource = "evento"
	LeadSourceOutro     LeadSource = "outro"
)

// LeadStage is the pipeline position of a lead. Stages form an ordered
// progression; leads are never hard-deleted, only moved between stages.

type LeadStage string

const (
	LeadStageNovo       LeadStage = "novo"
	LeadStageContatado  LeadStage = "contatado"
	LeadStageProposta   LeadStage = "proposta"
	LeadStageNegociacao LeadStage = "negociacao"
	LeadStageFechado    LeadStage = "fechado"
	LeadStagePerdido    LeadStage = "perdido"
)

// Lead is a prospective contact captured by the intake form.
//
// Storage model (DynamoDB):
//   - PK: id
type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Source    LeadSource `json:"source"`
	Stage     LeadStage  `json:"stage"`
	Tags      []string   `json:"tags,omitempty"`
	OwnerID   string     `json:"owner_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ValidLeadStage reports whether s is one of the known pipeline stages.
func ValidLeadStage(s LeadStage) bool {
	switch s {
	case LeadStageNovo, LeadStageContatado, LeadStageProposta, LeadStageNegociacao, LeadStageFechado, LeadStagePerdido:
		return true
	}
	return false
}
