package update_product

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/models/m_product"
	"github.com/light-bringer/lumina-store/internal/pkg/committer"
)

// Request contains a partial product update. Nil fields are left unchanged.
// A stock change recomputes the availability flag in the same mutation.
type Request struct {
	ProductID   string
	Name        *string
	Description *string
	Category    *string
	ImageURL    *string
	Price       *int64
	StockCount  *int64
}

// Interactor handles the update product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
}

// NewInteractor creates a new update product interactor.
func NewInteractor(repo contracts.ProductRepository, comm *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: comm,
	}
}

// Execute loads the product, applies the requested changes and commits them
// with an optimistic version check against the loaded version.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.ProductID == "" {
		return domain.ErrMissingProductRef
	}

	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	if err := i.apply(product, req); err != nil {
		return err
	}

	mut := i.repo.UpdateMut(product)
	if mut == nil {
		return nil
	}

	plan := committer.NewPlan()
	plan.Add(mut)

	err = i.committer.ApplyWithVersionCheck(ctx,
		m_product.TableName, spanner.Key{product.ID()}, m_product.Version, product.Version(), plan)
	if err != nil {
		if errors.Is(err, committer.ErrVersionConflict) {
			return domain.ErrConcurrentUpdate
		}
		return fmt.Errorf("failed to commit product update: %w", err)
	}

	return nil
}

func (i *Interactor) apply(product *domain.Product, req *Request) error {
	if req.Name != nil {
		if err := product.SetName(*req.Name); err != nil {
			return err
		}
	}

	if req.Description != nil {
		if err := product.SetDescription(*req.Description); err != nil {
			return err
		}
	}

	if req.Category != nil {
		if err := product.SetCategory(*req.Category); err != nil {
			return err
		}
	}

	if req.ImageURL != nil {
		product.SetImageURL(*req.ImageURL)
	}

	if req.Price != nil {
		price, err := domain.NewMoney(*req.Price)
		if err != nil {
			return err
		}
		product.SetPrice(price)
	}

	if req.StockCount != nil {
		if err := product.SetStock(*req.StockCount); err != nil {
			return err
		}
	}

	return nil
}
