package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID   = "product_id"
	Name        = "name"
	Description = "description"
	Category    = "category"
	ImageURL    = "image_url"
	Price       = "price"
	StockCount  = "stock_count"
	InStock     = "in_stock"
	Version     = "version"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// Columns lists every column of the products table, in schema order.
var Columns = []string{
	ProductID,
	Name,
	Description,
	Category,
	ImageURL,
	Price,
	StockCount,
	InStock,
	Version,
	CreatedAt,
	UpdatedAt,
}
