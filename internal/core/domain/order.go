package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ShippingInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
}

// Valid reports whether every field is filled in.
func (s ShippingInfo) Valid() bool {
	for _, v := range []string{
		s.FirstName, s.LastName, s.Email, s.Phone,
		s.Address, s.City, s.State, s.ZipCode,
	} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

type PaymentInfo struct {
	CardNumber string
	ExpiryDate string
	CVV        string
	CardName   string
}

func (p PaymentInfo) Valid() bool {
	return len(p.digits()) == 16 &&
		len(p.ExpiryDate) == 5 &&
		len(p.CVV) == 3 &&
		strings.TrimSpace(p.CardName) != ""
}

// Masked returns the card number with everything but the last four
// digits hidden.
func (p PaymentInfo) Masked() string {
	d := p.digits()
	if len(d) < 4 {
		return "**** **** **** ****"
	}
	return "**** **** **** " + d[len(d)-4:]
}

func (p PaymentInfo) digits() string {
	return strings.ReplaceAll(p.CardNumber, " ", "")
}

var (
	nonDigits  = regexp.MustCompile(`[^0-9]`)
	cardDigits = regexp.MustCompile(`\d{4,16}`)
)

// FormatCardNumber groups the card digits by four, "4242 4242 4242 4242".
// Input with fewer than four digits is returned with non-digits stripped.
func FormatCardNumber(s string) string {
	v := nonDigits.ReplaceAllString(s, "")
	match := cardDigits.FindString(v)
	if match == "" {
		return v
	}
	var parts []string
	for i := 0; i < len(match); i += 4 {
		parts = append(parts, match[i:min(i+4, len(match))])
	}
	return strings.Join(parts, " ")
}

// FormatExpiryDate turns "1226" into "12/26".
func FormatExpiryDate(s string) string {
	v := nonDigits.ReplaceAllString(s, "")
	if len(v) < 2 {
		return v
	}
	return v[:2] + "/" + v[2:min(4, len(v))]
}

type OrderItem struct {
	ProductID int
	Title     string
	Quantity  int
	Price     float64
}

type Order struct {
	ID                string
	Number            string
	Email             string
	PlacedAt          time.Time
	EstimatedDelivery time.Time
	Items             []OrderItem
	Subtotal          decimal.Decimal
	Tax               decimal.Decimal
	Shipping          decimal.Decimal
	Total             decimal.Decimal
	PaymentMethod     string
	ShippingAddress   ShippingInfo
}

// OrderSummary is the entry kept in a user's order history.
type OrderSummary struct {
	Number   string
	PlacedAt time.Time
	Items    int
	Total    float64
}

func (o Order) Summary() OrderSummary {
	var n int
	for _, item := range o.Items {
		n += item.Quantity
	}
	return OrderSummary{
		Number:   o.Number,
		PlacedAt: o.PlacedAt,
		Items:    n,
		Total:    o.Total.InexactFloat64(),
	}
}
