package delete_product

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/pkg/committer"
)

// Request identifies the product to delete.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case. Deleting a product keeps
// the sale log intact and nulls the product reference on click events in the
// same transaction; aggregation reports the product as unknown afterwards.
type Interactor struct {
	productRepo contracts.ProductRepository
	clickRepo   contracts.ClickRepository
	committer   *committer.Committer
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(productRepo contracts.ProductRepository, clickRepo contracts.ClickRepository, comm *committer.Committer) *Interactor {
	return &Interactor{
		productRepo: productRepo,
		clickRepo:   clickRepo,
		committer:   comm,
	}
}

// Execute removes the product.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.ProductID == "" {
		return domain.ErrMissingProductRef
	}

	err := i.committer.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		if _, err := i.productRepo.GetForUpdate(ctx, txn, req.ProductID); err != nil {
			return err
		}

		if _, err := i.clickRepo.ClearProductRefs(ctx, txn, req.ProductID); err != nil {
			return err
		}

		return txn.BufferWrite([]*spanner.Mutation{i.productRepo.DeleteMut(req.ProductID)})
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
