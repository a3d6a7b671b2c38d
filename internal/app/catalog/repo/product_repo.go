package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/models/m_product"
	"github.com/light-bringer/lumina-store/internal/pkg/clock"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	clock  clock.Clock
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(r.domainToData(product))
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
// A dirty stock count always writes stock_count and in_stock together.
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}

	if changes.Dirty(domain.FieldCategory) {
		updates[m_product.Category] = product.Category()
	}

	if changes.Dirty(domain.FieldImageURL) {
		updates[m_product.ImageURL] = nullString(product.ImageURL())
	}

	if changes.Dirty(domain.FieldPrice) {
		updates[m_product.Price] = product.Price().Units()
	}

	if changes.Dirty(domain.FieldStockCount) {
		updates[m_product.StockCount] = product.StockCount()
		updates[m_product.InStock] = product.InStock()
	}

	if len(updates) == 0 {
		return nil
	}

	updates[m_product.UpdatedAt] = r.clock.Now()
	updates[m_product.Version] = product.Version() + 1

	return r.model.UpdateMut(product.ID(), updates)
}

// DeleteMut creates a mutation removing the product row.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, wrapInfra("failed to read product", err)
	}

	return rowToDomain(row)
}

// GetForUpdate reads a product through a read-write transaction.
func (r *ProductRepo) GetForUpdate(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (*domain.Product, error) {
	row, err := txn.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, wrapInfra("failed to read product for update", err)
	}

	return rowToDomain(row)
}

// domainToData converts a domain Product to a database row.
func (r *ProductRepo) domainToData(product *domain.Product) *m_product.Data {
	return &m_product.Data{
		ProductID:   product.ID(),
		Name:        product.Name(),
		Description: product.Description(),
		Category:    product.Category(),
		ImageURL:    nullString(product.ImageURL()),
		Price:       product.Price().Units(),
		StockCount:  product.StockCount(),
		InStock:     product.InStock(),
		Version:     product.Version(),
		CreatedAt:   product.CreatedAt(),
		UpdatedAt:   product.UpdatedAt(),
	}
}

// rowToDomain decodes and validates a database row into the strict aggregate.
func rowToDomain(row *spanner.Row) (*domain.Product, error) {
	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	price, err := domain.NewMoney(data.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price for product %s: %w", data.ProductID, err)
	}

	if data.StockCount < 0 {
		return nil, fmt.Errorf("invalid stored stock for product %s: %w", data.ProductID, domain.ErrInvalidStock)
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Description,
		data.Category,
		data.ImageURL.StringVal,
		price,
		data.StockCount,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}

func nullString(s string) spanner.NullString {
	if s == "" {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: s, Valid: true}
}
