package domain

import "github.com/shopspring/decimal"

type CartItem struct {
	Product  Product
	Quantity int
}

func (i CartItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Product.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Cart struct {
	Items []CartItem
}

func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// TotalPrice returns the sum of price * quantity over all items.
func (c Cart) TotalPrice() float64 {
	return c.Subtotal().InexactFloat64()
}

func (c Cart) TotalItems() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

type WishlistEntry struct {
	Product Product
}

type Wishlist struct {
	Entries []WishlistEntry
}

func (w Wishlist) Count() int {
	return len(w.Entries)
}

func (w Wishlist) Contains(productID int) bool {
	for _, e := range w.Entries {
		if e.Product.ID == productID {
			return true
		}
	}
	return false
}
