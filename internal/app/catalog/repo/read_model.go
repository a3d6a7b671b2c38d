package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/models/m_product"
	"github.com/light-bringer/lumina-store/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner. It bypasses the domain
// layer and decodes rows straight into DTOs.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, wrapInfra("failed to read product", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return dataToDTO(&data)
}

// ListProducts retrieves products ordered by creation time descending.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) ([]*contracts.ProductDTO, error) {
	builder := query.From(m_product.TableName).
		Select(m_product.Columns...).
		OrderBy(m_product.CreatedAt, query.Desc)

	if filter != nil && filter.Category != "" {
		builder = builder.Where(query.Eq(m_product.Category, filter.Category))
	}
	if filter != nil && filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	iter := rm.client.Single().Query(ctx, builder.Build())
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapInfra("failed to iterate products", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		dto, err := dataToDTO(&data)
		if err != nil {
			return nil, err
		}
		products = append(products, dto)
	}

	return products, nil
}

// ListSales retrieves the full sale log, newest first, joined to current
// product names. A sale whose product was deleted keeps its product_id and
// reports the product as unknown.
func (rm *ReadModelImpl) ListSales(ctx context.Context) ([]*contracts.SaleDTO, error) {
	stmt := spanner.Statement{
		SQL: "SELECT s.sale_id, s.customer_name, s.customer_phone, s.customer_address, " +
			"s.product_id, p.name, s.quantity, s.unit_price, s.total_price, s.created_at " +
			"FROM sales AS s LEFT JOIN products AS p ON s.product_id = p.product_id " +
			"ORDER BY s.created_at DESC",
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	sales := make([]*contracts.SaleDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapInfra("failed to iterate sales", err)
		}

		var (
			dto         contracts.SaleDTO
			phone       spanner.NullString
			address     spanner.NullString
			productName spanner.NullString
			createdAt   time.Time
		)
		if err := row.Columns(&dto.SaleID, &dto.CustomerName, &phone, &address,
			&dto.ProductID, &productName, &dto.Quantity, &dto.UnitPrice, &dto.TotalPrice, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse sale: %w", err)
		}

		dto.CustomerPhone = phone.StringVal
		dto.CustomerAddress = address.StringVal
		dto.ProductName = productNameOrUnknown(productName)
		dto.CreatedAt = createdAt

		sales = append(sales, &dto)
	}

	return sales, nil
}

// ListClicks retrieves the full click log, newest first, joined to current
// product names.
func (rm *ReadModelImpl) ListClicks(ctx context.Context) ([]*contracts.ClickDTO, error) {
	stmt := spanner.Statement{
		SQL: "SELECT c.click_id, c.product_id, p.name, c.event_type, c.created_at " +
			"FROM click_events AS c LEFT JOIN products AS p ON c.product_id = p.product_id " +
			"ORDER BY c.created_at DESC",
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	clicks := make([]*contracts.ClickDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapInfra("failed to iterate clicks", err)
		}

		var (
			dto         contracts.ClickDTO
			productID   spanner.NullString
			productName spanner.NullString
			createdAt   time.Time
		)
		if err := row.Columns(&dto.ClickID, &productID, &productName, &dto.EventType, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse click: %w", err)
		}

		dto.ProductID = productID.StringVal
		dto.ProductName = productNameOrUnknown(productName)
		dto.CreatedAt = createdAt

		clicks = append(clicks, &dto)
	}

	return clicks, nil
}

// dataToDTO validates the stored price and stock before exposing the row, so
// a corrupt row surfaces as an error instead of leaking into the storefront.
func dataToDTO(data *m_product.Data) (*contracts.ProductDTO, error) {
	if _, err := domain.NewMoney(data.Price); err != nil {
		return nil, fmt.Errorf("invalid stored price for product %s: %w", data.ProductID, err)
	}
	if data.StockCount < 0 {
		return nil, fmt.Errorf("invalid stored stock for product %s: %w", data.ProductID, domain.ErrInvalidStock)
	}

	return &contracts.ProductDTO{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		ImageURL:    data.ImageURL.StringVal,
		Price:       data.Price,
		StockCount:  data.StockCount,
		InStock:     data.InStock,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

func productNameOrUnknown(name spanner.NullString) string {
	if name.Valid {
		return name.StringVal
	}
	return contracts.UnknownProductName
}
