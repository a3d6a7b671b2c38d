package record_sale

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/pkg/clock"
	"github.com/light-bringer/lumina-store/internal/pkg/committer"
)

// Request contains the data needed to record a sale.
type Request struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	ProductID       string
	Quantity        int64
}

// Result reports the committed sale and the product state after it.
type Result struct {
	SaleID         string
	UnitPrice      int64
	TotalPrice     int64
	RemainingStock int64
	InStock        bool
}

// Interactor handles the record sale use case: insert the sale with a
// snapshot of the product price and decrement the stock, as one transaction.
type Interactor struct {
	productRepo contracts.ProductRepository
	saleRepo    contracts.SaleRepository
	committer   *committer.Committer
	clock       clock.Clock
}

// NewInteractor creates a new record sale interactor.
func NewInteractor(
	productRepo contracts.ProductRepository,
	saleRepo contracts.SaleRepository,
	comm *committer.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		committer:   comm,
		clock:       clk,
	}
}

// Execute records the sale. The stock check and decrement run against the
// product row read inside the same read-write transaction, so two racing
// sales serialize and stock can never go negative. The operation is not
// idempotent and must not be retried after an ambiguous failure.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if err := i.validate(req); err != nil {
		return nil, err
	}

	var (
		result    Result
		committed bool
	)

	err := i.committer.InTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		committed = false

		product, err := i.productRepo.GetForUpdate(ctx, txn, req.ProductID)
		if err != nil {
			return err
		}

		sale, err := domain.NewSale(
			uuid.New().String(),
			req.CustomerName,
			req.CustomerPhone,
			req.CustomerAddress,
			product.ID(),
			req.Quantity,
			product.Price(),
			i.clock.Now(),
		)
		if err != nil {
			return err
		}

		if err := product.DeductStock(req.Quantity); err != nil {
			return err
		}

		muts := []*spanner.Mutation{i.saleRepo.InsertMut(sale)}
		if mut := i.productRepo.UpdateMut(product); mut != nil {
			muts = append(muts, mut)
		}
		if err := txn.BufferWrite(muts); err != nil {
			return err
		}

		result = Result{
			SaleID:         sale.ID(),
			UnitPrice:      sale.UnitPrice().Units(),
			TotalPrice:     sale.TotalPrice().Units(),
			RemainingStock: product.StockCount(),
			InStock:        product.InStock(),
		}

		// The callback is done; anything failing past this point is the
		// commit itself.
		committed = true
		return nil
	})
	if err != nil {
		return nil, i.classify(err, committed)
	}

	return &result, nil
}

func (i *Interactor) validate(req *Request) error {
	if req.CustomerName == "" {
		return domain.ErrEmptyCustomerName
	}
	if req.ProductID == "" {
		return domain.ErrMissingProductRef
	}
	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// classify maps a failed transaction to the domain taxonomy. A failure after
// the callback completed means the commit outcome is unknown: the sale and
// the decrement are a single unit either way, but the caller cannot tell
// whether they landed, which must be surfaced for manual reconciliation
// instead of being retried.
func (i *Interactor) classify(err error, commitAttempted bool) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrEmptyCustomerName),
		errors.Is(err, domain.ErrInvalidQuantity):
		return err
	case errors.Is(err, domain.ErrConcurrentUpdate) || spanner.ErrCode(err) == codes.Aborted:
		// An aborted commit is known to not have landed.
		return domain.ErrConcurrentUpdate
	case commitAttempted:
		return fmt.Errorf("%w: %v", domain.ErrPartialSale, err)
	case errors.Is(err, domain.ErrBackendUnavailable):
		return err
	default:
		return fmt.Errorf("failed to record sale: %w", err)
	}
}
