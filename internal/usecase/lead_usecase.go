package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrInvalidLeadID    = errors.New("invalid lead id")
	ErrInvalidLeadName  = errors.New("invalid lead name")
	ErrInvalidLeadStage = errors.New("invalid lead stage")
)

// ILeadUseCase exposes lead intake and pipeline operations.

type ILeadUseCase interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStage(ctx context.Context, id string, stage entities.LeadStage) (entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return entities.Lead{}, ErrInvalidLeadName
	}
	if l.Source == "" {
		l.Source = entities.LeadSourceOutro
	}

	now := time.Now().UTC()
	l.ID = uuid.NewString()
	l.Stage = entities.LeadStageNovo
	l.CreatedAt = now
	l.UpdatedAt = now

	return u.repo.Create(ctx, l)
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	return u.repo.List(ctx)
}

func (u *LeadUseCase) UpdateStage(ctx context.Context, id string, stage entities.LeadStage) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	if !entities.ValidLeadStage(stage) {
		return entities.Lead{}, ErrInvalidLeadStage
	}

	updated, err := u.repo.UpdateStage(ctx, id, stage)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return updated, nil
}
