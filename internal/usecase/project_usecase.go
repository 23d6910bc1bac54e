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
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidProjectID    = errors.New("invalid project id")
	ErrInvalidProjectTitle = errors.New("invalid project title")
	ErrInvalidProjectState = errors.New("invalid project status")
)

// IProjectUseCase exposes production-project operations for projects created
// directly by a user. Projects derived from signed quotes are created by the
// approval pipeline instead.

type IProjectUseCase interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return entities.Project{}, ErrInvalidProjectTitle
	}
	if strings.TrimSpace(p.ProductType) == "" {
		p.ProductType = entities.DefaultProductType
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Status = entities.ProjectStatusBriefing
	p.CreatedAt = now
	p.UpdatedAt = now

	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !entities.ValidProjectStatus(status) {
		return entities.Project{}, ErrInvalidProjectState
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}
