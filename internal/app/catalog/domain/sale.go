package domain

import "time"

// Sale is an immutable record of a completed sale. The unit price is a
// snapshot of the product price at sale time and is never re-derived.
type Sale struct {
	id              string
	customerName    string
	customerPhone   string
	customerAddress string
	productID       string
	quantity        int64
	unitPrice       Money
	totalPrice      Money
	createdAt       time.Time
}

// NewSale creates a Sale record. Phone and address are optional.
func NewSale(id, customerName, customerPhone, customerAddress, productID string, quantity int64, unitPrice Money, now time.Time) (*Sale, error) {
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if productID == "" {
		return nil, ErrMissingProductRef
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &Sale{
		id:              id,
		customerName:    customerName,
		customerPhone:   customerPhone,
		customerAddress: customerAddress,
		productID:       productID,
		quantity:        quantity,
		unitPrice:       unitPrice,
		totalPrice:      unitPrice.MulQuantity(quantity),
		createdAt:       now,
	}, nil
}

// Getters
func (s *Sale) ID() string              { return s.id }
func (s *Sale) CustomerName() string    { return s.customerName }
func (s *Sale) CustomerPhone() string   { return s.customerPhone }
func (s *Sale) CustomerAddress() string { return s.customerAddress }
func (s *Sale) ProductID() string       { return s.productID }
func (s *Sale) Quantity() int64         { return s.quantity }
func (s *Sale) UnitPrice() Money        { return s.unitPrice }
func (s *Sale) TotalPrice() Money       { return s.totalPrice }
func (s *Sale) CreatedAt() time.Time    { return s.createdAt }
