package catalog_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/catalog"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func stock(n int) *int {
	return &n
}

func idsOf(ps []domain.Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestFeatured(t *testing.T) {
	ps := []domain.Product{
		{ID: 1, Rating: domain.Rating{Rate: 3.9}},
		{ID: 2, Rating: domain.Rating{Rate: 4.1}},
		{ID: 3, Rating: domain.Rating{Rate: 2.0}, IsNew: true},
		{ID: 4, Rating: domain.Rating{Rate: 4.8}},
		{ID: 5, Rating: domain.Rating{Rate: 4.1}},
	}
	assert.Equal(t, []int{4, 2, 5, 3}, idsOf(catalog.Featured(ps, 8)))
	assert.Equal(t, []int{4, 2}, idsOf(catalog.Featured(ps, 2)))
}

func TestSpecialOffers(t *testing.T) {
	ps := []domain.Product{
		{ID: 1, Price: 120},
		{ID: 2, Price: 120, DiscountedPrice: 99},
		{ID: 3, Price: 49.99},
		{ID: 4, Price: 300, OldPrice: "350"},
		{ID: 5, Price: 10},
	}
	assert.Equal(t, []int{2, 3, 4}, idsOf(catalog.SpecialOffers(ps, 3)))
	assert.Equal(t, []int{2, 3, 4, 5}, idsOf(catalog.SpecialOffers(ps, 10)))
}

func TestHotDeals(t *testing.T) {
	ps := []domain.Product{
		// no stock information
		{ID: 1, Price: 20, Rating: domain.Rating{Rate: 4.5}},
		// out of stock
		{ID: 2, Price: 20, Rating: domain.Rating{Rate: 4.5}, Stock: stock(0)},
		// too expensive
		{ID: 3, Price: 150, DiscountedPrice: 50, Stock: stock(5)},
		// 10% off
		{ID: 4, Price: 90, DiscountedPrice: 81, Stock: stock(5)},
		// 50% off
		{ID: 5, Price: 80, DiscountedPrice: 40, Stock: stock(5)},
		// high rating, no discount
		{ID: 6, Price: 30, Rating: domain.Rating{Rate: 4.2}, Stock: stock(1)},
		// new, lower rating
		{ID: 7, Price: 10, Rating: domain.Rating{Rate: 3.0}, IsNew: true, Stock: stock(1)},
		// same rating as 6, cheaper
		{ID: 8, Price: 25, Rating: domain.Rating{Rate: 4.2}, Stock: stock(1)},
		// not eligible
		{ID: 9, Price: 25, Rating: domain.Rating{Rate: 3.0}, Stock: stock(1)},
	}

	assert.Equal(t, []int{5, 4, 8, 6, 7}, idsOf(catalog.HotDeals(ps, 10)))
	assert.Equal(t, []int{5, 4, 8, 6}, idsOf(catalog.HotDeals(ps, catalog.DefaultHotDealLimit)))
}

func TestSearch(t *testing.T) {
	ps := []domain.Product{
		{ID: 1, Title: "Mens Casual Slim Fit"},
		{ID: 2, Title: "Lens", Description: "A camera lens"},
		{ID: 3, Title: "Watch", Brand: "Casio"},
		{ID: 4, Title: "Ring", Category: "jewelery"},
		{ID: 5, Title: "Bag", Type: "casual"},
	}
	assert.Equal(t, []int{1, 3, 5}, idsOf(catalog.Search(ps, "CAS")))
	assert.Equal(t, []int{2}, idsOf(catalog.Search(ps, "camera")))
	assert.Equal(t, []int{4}, idsOf(catalog.Search(ps, "Jewel")))
	assert.Empty(t, catalog.Search(ps, "sofa"))
}

func TestSimpleViews(t *testing.T) {
	ps := []domain.Product{
		{ID: 1, Price: 10, Brand: "Apple", Type: "phone", Stock: stock(0)},
		{ID: 2, Price: 500, DiscountedPrice: 450, IsNew: true, Brand: "apple inc", Stock: stock(3)},
		{ID: 3, Price: 150, OldPrice: "200", Type: "Headphones"},
		{ID: 4, Price: 45},
		{ID: 5, Price: 700},
	}

	assert.Equal(t, []int{2, 3}, idsOf(catalog.Discounted(ps)))
	assert.Equal(t, []int{2}, idsOf(catalog.NewArrivals(ps)))
	assert.Equal(t, []int{1, 2}, idsOf(catalog.ByBrand(ps, "APPLE")))
	assert.Equal(t, []int{3}, idsOf(catalog.ByType(ps, "phones")))
	assert.Equal(t, []int{2, 3, 4, 5}, idsOf(catalog.InStock(ps)))
	assert.Equal(t, []int{5, 2, 3}, idsOf(catalog.Premium(ps, 8)))
	assert.Equal(t, []int{5}, idsOf(catalog.Premium(ps, 1)))
	assert.Equal(t, []int{1, 4}, idsOf(catalog.Budget(ps, 8)))
}

func TestRelated(t *testing.T) {
	ps := []domain.Product{
		{ID: 1, Category: "men's clothing"},
		{ID: 2, Category: "electronics"},
		{ID: 3, Category: "Fashion"},
		{ID: 4, Category: "men's clothing"},
		{ID: 5, Category: "Fashion"},
		{ID: 6, Category: "men's clothing"},
		{ID: 7, Category: "men's clothing"},
	}

	assert.Equal(t, []int{3, 4, 5, 6}, idsOf(catalog.Related(ps, ps[0])))
	assert.Empty(t, catalog.Related(ps, ps[1]))
	assert.Empty(t, catalog.Related(ps, domain.Product{ID: 42, Category: "jewelery"}))

	outside := domain.Product{ID: 4, Category: "electronics", Source: domain.SourceFakeStore}
	assert.Equal(t, []int{2}, idsOf(catalog.Related(ps, outside)))
}
