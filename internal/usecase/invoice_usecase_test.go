package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"editora_prisma/internal/domain/entities"
	mock_interfaces "editora_prisma/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingInvoice() entities.Invoice {
	return entities.Invoice{
		ID:               "inv-1",
		OrderID:          "o-1",
		Value:            400,
		Installment:      2,
		InstallmentCount: 3,
		Status:           entities.InvoiceStatusPendente,
	}
}

func TestInvoiceUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.GetByID(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_ListByOrderID(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.ListByOrderID(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("delegates to repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)

		repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.Invoice{pendingInvoice()}, nil)

		invs, err := uc.ListByOrderID(context.Background(), " o-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(invs) != 1 {
			t.Fatalf("expected 1 invoice, got %d", len(invs))
		}
	})
}

func TestInvoiceUseCase_CollectPayment(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"ana@example.com"}}`)

	t.Run("invalid id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.CollectPayment(context.Background(), "", payload)
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, mock_interfaces.NewMockIPaymentGateway(gomock.NewController(t)))
		for _, raw := range []json.RawMessage{nil, json.RawMessage("{not json")} {
			_, err := uc.CollectPayment(context.Background(), "inv-1", raw)
			if !errors.Is(err, ErrInvalidMPPayload) {
				t.Fatalf("expected ErrInvalidMPPayload for %q, got %v", raw, err)
			}
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.CollectPayment(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.CollectPayment(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		paid := pendingInvoice()
		paid.Status = entities.InvoiceStatusPago
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(paid, nil)

		_, err := uc.CollectPayment(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("expected ErrInvoiceAlreadyPaid, got %v", err)
		}
	})

	t.Run("enriches payload and marks paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, raw json.RawMessage) (string, string, json.RawMessage, error) {
				var sent map[string]any
				if err := json.Unmarshal(raw, &sent); err != nil {
					t.Fatalf("gateway payload is not json: %v", err)
				}
				if sent["transaction_amount"] != 400.0 {
					t.Fatalf("expected amount from invoice, got %v", sent["transaction_amount"])
				}
				if sent["external_reference"] != "inv-1" {
					t.Fatalf("expected external_reference inv-1, got %v", sent["external_reference"])
				}
				if sent["description"] != "Fatura 2/3 do pedido o-1" {
					t.Fatalf("unexpected description %v", sent["description"])
				}
				if sent["payment_method_id"] != "pix" {
					t.Fatalf("expected caller fields preserved, got %v", sent)
				}
				return "mp-777", "approved", json.RawMessage(`{"id":777}`), nil
			},
		)
		repo.EXPECT().MarkPaid(gomock.Any(), "inv-1", "mp-777").DoAndReturn(
			func(_ context.Context, id, providerID string) (entities.Invoice, error) {
				inv := pendingInvoice()
				inv.Status = entities.InvoiceStatusPago
				return inv, nil
			},
		)

		inv, err := uc.CollectPayment(context.Background(), "inv-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusPago {
			t.Fatalf("expected status pago, got %s", inv.Status)
		}
	})

	t.Run("caller amount is overwritten", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, raw json.RawMessage) (string, string, json.RawMessage, error) {
				var sent map[string]any
				if err := json.Unmarshal(raw, &sent); err != nil {
					t.Fatalf("gateway payload is not json: %v", err)
				}
				if sent["transaction_amount"] != 400.0 {
					t.Fatalf("expected stored value 400, got %v", sent["transaction_amount"])
				}
				if sent["external_reference"] != "custom-ref" {
					t.Fatalf("expected caller reference kept, got %v", sent["external_reference"])
				}
				return "mp-1", "approved", nil, nil
			},
		)
		repo.EXPECT().MarkPaid(gomock.Any(), "inv-1", "mp-1").Return(pendingInvoice(), nil)

		tampered := json.RawMessage(`{"transaction_amount":1,"external_reference":"custom-ref"}`)
		if _, err := uc.CollectPayment(context.Background(), "inv-1", tampered); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.CollectPayment(context.Background(), "inv-1", payload)
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("mark paid races to missing invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoiceUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(pendingInvoice(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", nil, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "inv-1", "mp-1").Return(entities.Invoice{}, nil)

		_, err := uc.CollectPayment(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}
