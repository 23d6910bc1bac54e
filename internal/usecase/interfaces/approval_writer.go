package interfaces

import (
	"context"

	"editora_prisma/internal/domain/entities"
)

//go:generate mockgen -source=approval_writer.go -destination=mocks/approval_writer.go -package=mock_interfaces

// IApprovalWriter persists an ApprovalBundle atomically: the optional new
// client, the project, the order, one invoice per schedule entry, and the
// back-references on the quote, all in a single DynamoDB transaction.
//
// Implementations must guard the quote update with a condition on the order
// back-reference being absent, so a redelivered approval event cannot create
// a second bundle. Apply returns (false, nil) when that condition rejects the
// transaction, mirroring the not-found convention of the repositories.

type IApprovalWriter interface {
	Apply(ctx context.Context, bundle entities.ApprovalBundle) (bool, error)
}
