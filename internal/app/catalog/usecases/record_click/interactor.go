package record_click

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/pkg/clock"
	"github.com/light-bringer/lumina-store/internal/pkg/committer"
)

// Request identifies the product a storefront visitor started checkout for.
type Request struct {
	ProductID string
}

// Interactor appends a checkout click to the event log. Callers on the
// storefront path treat failures as best-effort: a lost click never blocks
// the checkout it accompanies.
type Interactor struct {
	clickRepo contracts.ClickRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new record click interactor.
func NewInteractor(clickRepo contracts.ClickRepository, comm *committer.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		clickRepo: clickRepo,
		committer: comm,
		clock:     clk,
	}
}

// Execute appends the click event and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	click, err := domain.NewClickEvent(uuid.New().String(), req.ProductID, i.clock.Now())
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(i.clickRepo.InsertMut(click))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to record click: %w", err)
	}

	return click.ID(), nil
}
