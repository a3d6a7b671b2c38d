package repo

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/models/m_click"
)

// ClickRepo implements ClickRepository for Spanner.
type ClickRepo struct {
	model *m_click.Model
}

// NewClickRepo creates a new ClickRepo.
func NewClickRepo() contracts.ClickRepository {
	return &ClickRepo{model: m_click.NewModel()}
}

// InsertMut creates a mutation for inserting a click event.
func (r *ClickRepo) InsertMut(click *domain.ClickEvent) *spanner.Mutation {
	return r.model.InsertMut(&m_click.Data{
		ClickID:   click.ID(),
		ProductID: nullString(click.ProductID()),
		EventType: click.EventType(),
		CreatedAt: click.CreatedAt(),
	})
}

// ClearProductRefs nulls the product reference on the product's click events.
// The events themselves stay in the log.
func (r *ClickRepo) ClearProductRefs(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (int64, error) {
	stmt := spanner.Statement{
		SQL:    "UPDATE click_events SET product_id = NULL WHERE product_id = @productID",
		Params: map[string]interface{}{"productID": productID},
	}

	count, err := txn.Update(ctx, stmt)
	if err != nil {
		return 0, wrapInfra("failed to clear click references", err)
	}
	return count, nil
}
