package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrInvalidClientState = errors.New("invalid client status")
)

// IClientUseCase exposes client operations.
//
// AssignNumber backs the background counter handler: it stamps the next
// sequential display number on a freshly created client, counter document and
// client updated in one transaction.

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	UpdateStatus(ctx context.Context, id string, status entities.ClientStatus) (entities.Client, error)
	AssignNumber(ctx context.Context, id string) (int, error)
}

type ClientUseCase struct {
	repo    interfaces.IClientRepository
	counter interfaces.ICounterRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, counter interfaces.ICounterRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, counter: counter}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if c.Kind == "" {
		c.Kind = entities.ClientKindPF
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	// ClientNumber stays 0 here; the counter handler stamps it when the
	// created document shows up on the change stream.
	c.ClientNumber = 0
	c.Status = entities.ClientStatusAtivo
	c.CreatedAt = now
	c.UpdatedAt = now

	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) UpdateStatus(ctx context.Context, id string, status entities.ClientStatus) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if status != entities.ClientStatusAtivo && status != entities.ClientStatusInativo {
		return entities.Client{}, ErrInvalidClientState
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) AssignNumber(ctx context.Context, id string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrInvalidClientID
	}

	n, err := u.counter.NextClientNumber(ctx, id)
	if err != nil {
		return 0, err
	}
	log.Printf("[client][usecase] client number assigned client_id=%s client_number=%d", id, n)
	return n, nil
}
