package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"editora_prisma/internal/domain/entities"
)

//go:generate mockgen -source=gateways.go -destination=mocks/gateways.go -package=mock_interfaces

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The provider response payload is persisted raw for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

// IBlobStore abstracts the S3 bucket where generated documents live.
//
// PresignGet returns a time-limited retrieval URL; re-generating a document
// overwrites the object under the same key and produces a fresh URL.
type IBlobStore interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// IQuoteRenderer renders a quote into a binary PDF document. The client is
// zero-valued when the quote only carries inline contact data.
type IQuoteRenderer interface {
	Render(q entities.Quote, c entities.Client) ([]byte, error)
}
