package interfaces

import (
	"context"

	"editora_prisma/internal/domain/entities"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mock_interfaces

// ILeadRepository abstracts DynamoDB persistence for Lead.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStage(ctx context.Context, id string, stage entities.LeadStage) (entities.Lead, error)
}

// IClientRepository abstracts DynamoDB persistence for Client.
//
// ClientNumber assignment is not here: it belongs to ICounterRepository,
// which must touch both the counter document and the client in one
// transaction.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	UpdateStatus(ctx context.Context, id string, status entities.ClientStatus) (entities.Client, error)
}

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// UpdateStatus is a conditional transition: the write only succeeds when the
// stored status equals from, which is what keeps user actions (send, approve,
// reject) from racing each other. A failed condition returns a zero Quote and
// a nil error, matching the not-found convention used across repositories.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	SetNumberIfAbsent(ctx context.Context, id, number string) (bool, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error)
	SetPDFURL(ctx context.Context, id, url string) (entities.Quote, error)
}

// IProjectRepository abstracts DynamoDB persistence for Project.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
}

// IOrderRepository reads orders. Orders are only ever written by the
// approval transaction (IApprovalWriter).

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Order, error)
}

// IInvoiceRepository abstracts DynamoDB persistence for Invoice. Invoices
// are created by the approval transaction; this interface covers reads and
// the paid-state mutation.

type IInvoiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Invoice, error)
	MarkPaid(ctx context.Context, id, paymentID string) (entities.Invoice, error)
}

// ICounterRepository assigns sequential client numbers from a shared counter
// document. The increment and the client stamp happen in one transaction so
// two concurrent assignments can never observe the same base value.

type ICounterRepository interface {
	NextClientNumber(ctx context.Context, clientID string) (int, error)
}
