package usecase

import (
	"context"
	"errors"
	"strings"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

// IOrderUseCase exposes read access to orders. Orders are written only by
// the approval pipeline.

type IOrderUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetByQuoteID(ctx context.Context, quoteID string) (entities.Order, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Order{}, ErrInvalidQuoteID
	}

	o, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
