package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/models/m_sale"
)

// SaleRepo implements SaleRepository for Spanner.
type SaleRepo struct {
	model *m_sale.Model
}

// NewSaleRepo creates a new SaleRepo.
func NewSaleRepo() contracts.SaleRepository {
	return &SaleRepo{model: m_sale.NewModel()}
}

// InsertMut creates a mutation for inserting a sale record.
func (r *SaleRepo) InsertMut(sale *domain.Sale) *spanner.Mutation {
	return r.model.InsertMut(&m_sale.Data{
		SaleID:          sale.ID(),
		CustomerName:    sale.CustomerName(),
		CustomerPhone:   nullString(sale.CustomerPhone()),
		CustomerAddress: nullString(sale.CustomerAddress()),
		ProductID:       sale.ProductID(),
		Quantity:        sale.Quantity(),
		UnitPrice:       sale.UnitPrice().Units(),
		TotalPrice:      sale.TotalPrice().Units(),
		CreatedAt:       sale.CreatedAt(),
	})
}
