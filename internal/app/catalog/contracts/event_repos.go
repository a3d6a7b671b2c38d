package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
)

// SaleRepository persists the append-only sale log.
type SaleRepository interface {
	// InsertMut creates a mutation for inserting a sale record
	InsertMut(sale *domain.Sale) *spanner.Mutation
}

// ClickRepository persists the append-only click log.
type ClickRepository interface {
	// InsertMut creates a mutation for inserting a click event
	InsertMut(click *domain.ClickEvent) *spanner.Mutation

	// ClearProductRefs nulls the product reference on every click event for
	// the given product. Runs as DML inside the caller's transaction so a
	// product delete and the reference cleanup commit together.
	ClearProductRefs(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (int64, error)
}
