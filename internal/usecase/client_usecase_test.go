package usecase

import (
	"context"
	"errors"
	"testing"

	"editora_prisma/internal/domain/entities"
	mock_interfaces "editora_prisma/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Client{Name: " "})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("defaults and generated fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.Kind != entities.ClientKindPF {
					t.Fatalf("expected default kind pf, got %s", c.Kind)
				}
				if c.Status != entities.ClientStatusAtivo {
					t.Fatalf("expected status ativo, got %s", c.Status)
				}
				if c.ClientNumber != 0 {
					t.Fatalf("expected unnumbered client, got %d", c.ClientNumber)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		c, err := uc.Create(context.Background(), entities.Client{Name: " Editora Azul ", ClientNumber: 99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Editora Azul" {
			t.Fatalf("expected trimmed name, got %q", c.Name)
		}
	})

	t.Run("keeps provided kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Kind != entities.ClientKindPJ {
					t.Fatalf("expected kind pj, got %s", c.Kind)
				}
				return c, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Client{Name: "ACME", Kind: entities.ClientKindPJ}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, nil)

		_, err := uc.GetByID(context.Background(), "c-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestClientUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "c-1", entities.ClientStatus("suspenso"))
		if !errors.Is(err, ErrInvalidClientState) {
			t.Fatalf("expected ErrInvalidClientState, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.ClientStatusInativo).Return(entities.Client{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "c-1", entities.ClientStatusInativo)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.ClientStatusInativo).
			Return(entities.Client{ID: "c-1", Status: entities.ClientStatusInativo}, nil)

		c, err := uc.UpdateStatus(context.Background(), "c-1", entities.ClientStatusInativo)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.ClientStatusInativo {
			t.Fatalf("expected status inativo, got %s", c.Status)
		}
	})
}

func TestClientUseCase_AssignNumber(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.AssignNumber(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("returns counter value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		counter := mock_interfaces.NewMockICounterRepository(ctrl)
		uc := NewClientUseCase(nil, counter)

		counter.EXPECT().NextClientNumber(gomock.Any(), "c-1").Return(42, nil)

		n, err := uc.AssignNumber(context.Background(), " c-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 42 {
			t.Fatalf("expected 42, got %d", n)
		}
	})

	t.Run("counter error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		counter := mock_interfaces.NewMockICounterRepository(ctrl)
		uc := NewClientUseCase(nil, counter)

		counter.EXPECT().NextClientNumber(gomock.Any(), "c-1").Return(0, errors.New("tx"))

		if _, err := uc.AssignNumber(context.Background(), "c-1"); err == nil || err.Error() != "tx" {
			t.Fatalf("expected tx error, got %v", err)
		}
	})
}
