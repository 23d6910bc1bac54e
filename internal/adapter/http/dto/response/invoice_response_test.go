package response

import (
	"testing"
	"time"

	"editora_prisma/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	now := time.Now().UTC()
	paidAt := now.Add(time.Hour)
	inv := entities.Invoice{
		ID:               "inv-1",
		OrderID:          "o-1",
		ProjectID:        "p-1",
		ClientID:         "c-1",
		Value:            400,
		DueDate:          now.AddDate(0, 1, 0),
		Installment:      2,
		InstallmentCount: 3,
		Status:           entities.InvoiceStatusPago,
		PaymentID:        "mp-777",
		PaidAt:           &paidAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res := FromInvoice(inv)
	if res.ID != "inv-1" || res.OrderID != "o-1" || res.Status != "pago" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Installment != 2 || res.InstallmentCount != 3 || res.Value != 400 {
		t.Fatalf("unexpected installment fields: %+v", res)
	}
	if res.PaymentID != "mp-777" || res.PaidAt == nil || !res.PaidAt.Equal(paidAt) {
		t.Fatalf("unexpected payment fields: %+v", res)
	}
	if res.CatalogCode != nil {
		t.Fatalf("expected nil catalog code, got %v", res.CatalogCode)
	}
}

func TestFromInvoices(t *testing.T) {
	out := FromInvoices([]entities.Invoice{{ID: "inv-1"}, {ID: "inv-2"}})
	if len(out) != 2 || out[0].ID != "inv-1" || out[1].ID != "inv-2" {
		t.Fatalf("unexpected output: %+v", out)
	}
}
