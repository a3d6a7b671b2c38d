package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
)

// ProductRepository defines product persistence. Repositories return
// mutations, they don't apply them; usecases commit them through a plan.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates a mutation for the product's dirty fields. When the
	// stock count is dirty the availability flag is written in the same
	// mutation; the two columns never diverge. Returns nil without changes.
	UpdateMut(product *domain.Product) *spanner.Mutation

	// DeleteMut creates a mutation removing the product row
	DeleteMut(productID string) *spanner.Mutation

	// GetByID reads a product with a single-use read-only transaction
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetForUpdate reads a product through a read-write transaction so a
	// later write in the same transaction is serialized against other writers
	GetForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (*domain.Product, error)
}
