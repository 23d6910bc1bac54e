package usecase

import (
	"context"
	"errors"
	"testing"

	"editora_prisma/internal/domain/entities"
	mock_interfaces "editora_prisma/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "o-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)

		o, err := uc.GetByID(context.Background(), " o-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "o-1" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestOrderUseCase_GetByQuoteID(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.GetByQuoteID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("no order yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Order{}, nil)

		_, err := uc.GetByQuoteID(context.Background(), "q-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Order{ID: "o-1", QuoteID: "q-1"}, nil)

		o, err := uc.GetByQuoteID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "o-1" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}
