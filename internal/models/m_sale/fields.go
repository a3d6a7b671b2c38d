package m_sale

// Field name constants for the sales table.
const (
	TableName = "sales"

	SaleID          = "sale_id"
	CustomerName    = "customer_name"
	CustomerPhone   = "customer_phone"
	CustomerAddress = "customer_address"
	ProductID       = "product_id"
	Quantity        = "quantity"
	UnitPrice       = "unit_price"
	TotalPrice      = "total_price"
	CreatedAt       = "created_at"
)

// Columns lists every column of the sales table, in schema order.
var Columns = []string{
	SaleID,
	CustomerName,
	CustomerPhone,
	CustomerAddress,
	ProductID,
	Quantity,
	UnitPrice,
	TotalPrice,
	CreatedAt,
}
