package create_product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/pkg/clock"
	"github.com/light-bringer/lumina-store/internal/pkg/committer"
)

// Request contains the data needed to create a product.
type Request struct {
	Name        string
	Description string
	Category    string
	ImageURL    string
	Price       int64
	StockCount  int64
}

// Interactor handles the create product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(repo contracts.ProductRepository, comm *committer.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: comm,
		clock:     clk,
	}
}

// Execute creates a new product and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	price, err := domain.NewMoney(req.Price)
	if err != nil {
		return "", err
	}

	product, err := domain.NewProduct(
		uuid.New().String(),
		req.Name,
		req.Description,
		req.Category,
		req.ImageURL,
		price,
		req.StockCount,
		i.clock.Now(),
	)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(product))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit product: %w", err)
	}

	return product.ID(), nil
}
