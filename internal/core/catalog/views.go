package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
)

const (
	DefaultFeaturedLimit     = 8
	DefaultSpecialOfferLimit = 3
	DefaultHotDealLimit      = 4
	DefaultPremiumLimit      = 8
	DefaultBudgetLimit       = 8
	RelatedLimit             = 4

	highRating   = 4.0
	budgetPrice  = 50
	hotDealPrice = 100
	premiumPrice = 100
)

func filter(ps []domain.Product, keep func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range ps {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func limit(ps []domain.Product, n int) []domain.Product {
	if n >= 0 && len(ps) > n {
		return ps[:n]
	}
	return ps
}

// Featured returns highly rated or new products, best rated first.
func Featured(ps []domain.Product, n int) []domain.Product {
	out := filter(ps, func(p domain.Product) bool {
		return p.Rating.Rate >= highRating || p.IsNew
	})
	slices.SortStableFunc(out, func(a, b domain.Product) int {
		return cmp.Compare(b.Rating.Rate, a.Rating.Rate)
	})
	return limit(out, n)
}

// SpecialOffers returns discounted or cheap products in feed order.
func SpecialOffers(ps []domain.Product, n int) []domain.Product {
	out := filter(ps, func(p domain.Product) bool {
		return p.DiscountedPrice != 0 || p.OldPrice != "" || p.Price < budgetPrice
	})
	return limit(out, n)
}

// HotDeals returns in-stock products under the hot deal price that are
// discounted, highly rated or new. Discounted products come first by
// discount percentage, then the rest by rating and price.
func HotDeals(ps []domain.Product, n int) []domain.Product {
	out := filter(ps, func(p domain.Product) bool {
		eligible := p.HasDiscount() || p.Rating.Rate >= highRating || p.IsNew
		hasStock := p.Stock != nil && *p.Stock > 0
		return eligible && p.Price < hotDealPrice && hasStock
	})
	slices.SortStableFunc(out, compareHotDeals)
	return limit(out, n)
}

func compareHotDeals(a, b domain.Product) int {
	aDisc, bDisc := a.DiscountedPrice != 0, b.DiscountedPrice != 0
	switch {
	case aDisc && !bDisc:
		return -1
	case !aDisc && bDisc:
		return 1
	}
	if c := cmp.Compare(b.DiscountPercent(), a.DiscountPercent()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Rating.Rate, a.Rating.Rate); c != 0 {
		return c
	}
	return cmp.Compare(a.Price, b.Price)
}

// Search matches the query against title, description, category, brand
// and type, ignoring case.
func Search(ps []domain.Product, query string) []domain.Product {
	q := strings.ToLower(query)
	return filter(ps, func(p domain.Product) bool {
		for _, field := range []string{p.Title, p.Description, p.Category, p.Brand, p.Type} {
			if field != "" && strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	})
}

func Discounted(ps []domain.Product) []domain.Product {
	return filter(ps, func(p domain.Product) bool {
		return p.DiscountedPrice != 0 || p.OldPrice != ""
	})
}

func NewArrivals(ps []domain.Product) []domain.Product {
	return filter(ps, func(p domain.Product) bool { return p.IsNew })
}

func ByBrand(ps []domain.Product, brand string) []domain.Product {
	return byField(ps, brand, func(p domain.Product) string { return p.Brand })
}

func ByType(ps []domain.Product, typ string) []domain.Product {
	return byField(ps, typ, func(p domain.Product) string { return p.Type })
}

func byField(
	ps []domain.Product, q string, field func(domain.Product) string,
) []domain.Product {
	q = strings.ToLower(q)
	return filter(ps, func(p domain.Product) bool {
		v := field(p)
		return v != "" && strings.Contains(strings.ToLower(v), q)
	})
}

func InStock(ps []domain.Product) []domain.Product {
	return filter(ps, domain.Product.InStock)
}

// Premium returns products above the premium price, most expensive first.
func Premium(ps []domain.Product, n int) []domain.Product {
	out := filter(ps, func(p domain.Product) bool { return p.Price > premiumPrice })
	slices.SortStableFunc(out, func(a, b domain.Product) int {
		return cmp.Compare(b.Price, a.Price)
	})
	return limit(out, n)
}

// Budget returns products below the budget price, cheapest first.
func Budget(ps []domain.Product, n int) []domain.Product {
	out := filter(ps, func(p domain.Product) bool { return p.Price < budgetPrice })
	slices.SortStableFunc(out, func(a, b domain.Product) int {
		return cmp.Compare(a.Price, b.Price)
	})
	return limit(out, n)
}

// Related returns up to [RelatedLimit] other products of the same
// category as p. p itself is matched on id and source, since it may
// come from outside ps.
func Related(ps []domain.Product, p domain.Product) []domain.Product {
	out := filter(ByCategory(ps, p.Category), func(o domain.Product) bool {
		return o.ID != p.ID || o.Source != p.Source
	})
	return limit(out, RelatedLimit)
}
