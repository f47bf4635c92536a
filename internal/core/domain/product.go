package domain

import "slices"

// A Source identifies the upstream catalog a product came from.
type Source string

const (
	SourceFakeStore Source = "fakestore"
	SourceReactBD   Source = "reactbd"
)

type (
	Product struct {
		ID          int
		Title       string
		Price       float64
		Description string
		Category    string
		Image       string
		Rating      Rating

		// Set only for products from the ReactBD feed.
		IsNew           bool
		OldPrice        string
		DiscountedPrice float64
		Stock           *int
		Brand           string
		Size            []string
		Type            string

		OriginalID int
		Source     Source
	}

	Rating struct {
		Rate  float64
		Count int
	}
)

// HasDiscount reports whether the product is sold below its list price.
func (p Product) HasDiscount() bool {
	return p.DiscountedPrice > 0 && p.DiscountedPrice < p.Price
}

// DiscountPercent returns the discount relative to the list price,
// or 0 when there is no discounted price.
func (p Product) DiscountPercent() float64 {
	if p.DiscountedPrice == 0 || p.Price == 0 {
		return 0
	}
	return (p.Price - p.DiscountedPrice) / p.Price * 100
}

// InStock reports true when the stock is unknown or positive.
func (p Product) InStock() bool {
	return p.Stock == nil || *p.Stock > 0
}

// Clone returns a copy of p that shares no memory with it.
func (p Product) Clone() Product {
	if p.Stock != nil {
		stock := *p.Stock
		p.Stock = &stock
	}
	p.Size = slices.Clone(p.Size)
	return p
}

type Category struct {
	Name        string
	Count       int
	DisplayName string
}

type Review struct {
	ID        int
	UserID    int
	ProductID int
	Rating    float64
	Comment   string
	CreatedAt string
}

type Comment struct {
	ID     int
	PostID int
	Name   string
	Email  string
	Body   string
}
