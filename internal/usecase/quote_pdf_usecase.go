package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"
)

// PDF URLs stay valid for 7 days; re-generating overwrites the stored object
// and produces a fresh URL.
const pdfURLExpiry = 7 * 24 * time.Hour

// IQuotePDFUseCase renders a quote to PDF, stores it and writes the signed
// retrieval URL back onto the quote.

type IQuotePDFUseCase interface {
	Generate(ctx context.Context, quoteID string) (string, error)
}

type QuotePDFUseCase struct {
	quotes   interfaces.IQuoteRepository
	clients  interfaces.IClientRepository
	renderer interfaces.IQuoteRenderer
	blobs    interfaces.IBlobStore
}

var _ IQuotePDFUseCase = (*QuotePDFUseCase)(nil)

func NewQuotePDFUseCase(
	quotes interfaces.IQuoteRepository,
	clients interfaces.IClientRepository,
	renderer interfaces.IQuoteRenderer,
	blobs interfaces.IBlobStore,
) *QuotePDFUseCase {
	return &QuotePDFUseCase{quotes: quotes, clients: clients, renderer: renderer, blobs: blobs}
}

// Generate uploads before writing the URL back. A failure between the two
// steps leaves an orphaned object in the bucket with no referencing field;
// the next generation request overwrites it under the same key.
func (u *QuotePDFUseCase) Generate(ctx context.Context, quoteID string) (string, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return "", ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return "", err
	}
	if q.ID == "" {
		return "", ErrQuoteNotFound
	}

	var client entities.Client
	if q.ClientID != "" {
		client, err = u.clients.GetByID(ctx, q.ClientID)
		if err != nil {
			return "", err
		}
	}

	body, err := u.renderer.Render(q, client)
	if err != nil {
		return "", err
	}

	key := QuotePDFKey(q)
	if err := u.blobs.Upload(ctx, key, body, "application/pdf"); err != nil {
		return "", err
	}

	url, err := u.blobs.PresignGet(ctx, key, pdfURLExpiry)
	if err != nil {
		return "", err
	}

	if _, err := u.quotes.SetPDFURL(ctx, q.ID, url); err != nil {
		log.Printf("[pdf][usecase] url write-back failed quote_id=%s key=%s err=%v", q.ID, key, err)
		return "", err
	}

	log.Printf("[pdf][usecase] pdf generated quote_id=%s key=%s", q.ID, key)
	return url, nil
}

// QuotePDFKey is the deterministic object key for a quote's PDF:
// quotes/{id}/quote-{number}.pdf. Unnumbered quotes fall back to the id.
func QuotePDFKey(q entities.Quote) string {
	number := q.Number
	if number == "" {
		number = q.ID
	}
	return fmt.Sprintf("quotes/%s/quote-%s.pdf", q.ID, number)
}
