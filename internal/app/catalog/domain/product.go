package domain

import "time"

// Field names for change tracking
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldImageURL    = "image_url"
	FieldPrice       = "price"
	FieldStockCount  = "stock_count"
)

// Product is the aggregate root of the inventory ledger. It owns the stock
// invariant: the stored in_stock flag always equals stock_count > 0, and the
// two are never written independently (mutating stockCount marks a single
// dirty field that repositories expand into both columns).
type Product struct {
	id          string
	name        string
	description string
	category    string
	imageURL    string
	price       Money
	stockCount  int64
	version     int64
	createdAt   time.Time
	updatedAt   time.Time

	// Change tracking for partial repository updates
	changes *ChangeTracker
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(id, name, description, category, imageURL string, price Money, stockCount int64, now time.Time) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if category == "" {
		return nil, ErrInvalidCategory
	}
	if stockCount < 0 {
		return nil, ErrInvalidStock
	}

	p := &Product{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		imageURL:    imageURL,
		price:       price,
		stockCount:  stockCount,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		changes:     NewChangeTracker(),
	}

	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldCategory)
	p.changes.MarkDirty(FieldImageURL)
	p.changes.MarkDirty(FieldPrice)
	p.changes.MarkDirty(FieldStockCount)

	return p, nil
}

// ReconstructProduct reconstitutes a Product from storage.
func ReconstructProduct(
	id, name, description, category, imageURL string,
	price Money,
	stockCount, version int64,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		imageURL:    imageURL,
		price:       price,
		stockCount:  stockCount,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		changes:     NewChangeTracker(),
	}
}

// Getters
func (p *Product) ID() string              { return p.id }
func (p *Product) Name() string            { return p.name }
func (p *Product) Description() string     { return p.description }
func (p *Product) Category() string        { return p.category }
func (p *Product) ImageURL() string        { return p.imageURL }
func (p *Product) Price() Money            { return p.price }
func (p *Product) StockCount() int64       { return p.stockCount }
func (p *Product) Version() int64          { return p.version }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker { return p.changes }

// InStock reports the derived availability flag.
func (p *Product) InStock() bool {
	return p.stockCount > 0
}

// SetName updates the product name.
func (p *Product) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	p.name = name
	p.changes.MarkDirty(FieldName)
	return nil
}

// SetDescription updates the product description.
func (p *Product) SetDescription(description string) error {
	if description == "" {
		return ErrEmptyDescription
	}
	p.description = description
	p.changes.MarkDirty(FieldDescription)
	return nil
}

// SetCategory updates the product category.
func (p *Product) SetCategory(category string) error {
	if category == "" {
		return ErrInvalidCategory
	}
	p.category = category
	p.changes.MarkDirty(FieldCategory)
	return nil
}

// SetImageURL updates the product image reference. Empty clears it.
func (p *Product) SetImageURL(imageURL string) {
	p.imageURL = imageURL
	p.changes.MarkDirty(FieldImageURL)
}

// SetPrice updates the product price.
func (p *Product) SetPrice(price Money) {
	p.price = price
	p.changes.MarkDirty(FieldPrice)
}

// SetStock replaces the stock count. The availability flag follows in the
// same mutation.
func (p *Product) SetStock(count int64) error {
	if count < 0 {
		return ErrInvalidStock
	}
	p.stockCount = count
	p.changes.MarkDirty(FieldStockCount)
	return nil
}

// DeductStock removes quantity units of stock for a sale.
// Fails without modifying the aggregate if quantity is not positive or
// exceeds the available stock.
func (p *Product) DeductStock(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.stockCount {
		return ErrInsufficientStock
	}
	p.stockCount -= quantity
	p.changes.MarkDirty(FieldStockCount)
	return nil
}
