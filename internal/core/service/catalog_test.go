package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/adapter/memory"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream is down")

func fakestoreFeed() []domain.Product {
	return []domain.Product{
		{OriginalID: 1, Title: "Backpack", Price: 109.95, Category: "men's clothing", Rating: domain.Rating{Rate: 3.9, Count: 120}},
		{OriginalID: 2, Title: "Slim Fit T-Shirt", Price: 22.3, Category: "men's clothing", Rating: domain.Rating{Rate: 4.1, Count: 259}},
		{OriginalID: 9, Title: "Hard Drive", Price: 64, Category: "electronics", Rating: domain.Rating{Rate: 3.3, Count: 203}},
	}
}

func reactbdFeed() []domain.Product {
	stock := 10
	return []domain.Product{
		{OriginalID: 31, Title: "Wireless Earbuds", Price: 80, DiscountedPrice: 60, Category: "Electronics", IsNew: true, Stock: &stock, Rating: domain.Rating{Rate: 4.5, Count: 32}},
		{OriginalID: 32, Title: "Backpack", Price: 50, Category: "Fashion", Stock: &stock},
		{OriginalID: 33, Title: "Sunglasses", Price: 25, OldPrice: "40", Category: "Accessories", Brand: "Ray", Stock: &stock},
	}
}

type fixture struct {
	fakestore *MockFakeStore
	reactbd   *MockReactBD
	storage   *memory.Storage
	service   service.Service
}

func newFixture(t *testing.T, opts ...service.Opt) fixture {
	t.Helper()
	f := fixture{
		fakestore: new(MockFakeStore),
		reactbd:   new(MockReactBD),
		storage:   memory.New(),
	}
	f.service = service.New(f.fakestore, f.reactbd, f.storage, f.storage, f.storage, opts...)
	t.Cleanup(func() {
		f.fakestore.AssertExpectations(t)
		f.reactbd.AssertExpectations(t)
	})
	return f
}

func (f fixture) withFeeds() fixture {
	f.fakestore.On("FetchProducts", mock.Anything).Return(fakestoreFeed(), nil)
	f.reactbd.On("FetchProducts", mock.Anything).Return(reactbdFeed(), nil)
	return f
}

func TestProducts(t *testing.T) {
	t.Run("Merged", func(t *testing.T) {
		f := newFixture(t).withFeeds()

		ps := f.service.Products(t.Context())
		require.Len(t, ps, 5)
		for i, p := range ps {
			assert.Equal(t, i+1, p.ID)
		}
		assert.Equal(t, "Wireless Earbuds", ps[3].Title)
		assert.Equal(t, domain.SourceReactBD, ps[3].Source)
		assert.Equal(t, "Sunglasses", ps[4].Title)
	})

	t.Run("ReactBDDown", func(t *testing.T) {
		f := newFixture(t)
		f.fakestore.On("FetchProducts", mock.Anything).Return(fakestoreFeed(), nil)
		f.reactbd.On("FetchProducts", mock.Anything).Return(nil, errUpstream)

		ps := f.service.Products(t.Context())
		require.Len(t, ps, 3)
		for _, p := range ps {
			assert.Equal(t, domain.SourceFakeStore, p.Source)
		}
	})

	t.Run("FakeStoreDown", func(t *testing.T) {
		f := newFixture(t)
		f.fakestore.On("FetchProducts", mock.Anything).Return(nil, errUpstream)
		f.reactbd.On("FetchProducts", mock.Anything).Return(reactbdFeed(), nil)

		ps := f.service.Products(t.Context())
		require.Len(t, ps, 3)
		assert.Equal(t, 1, ps[0].ID)
		assert.Equal(t, "Backpack", ps[1].Title)
	})

	t.Run("BothDown", func(t *testing.T) {
		f := newFixture(t)
		f.fakestore.On("FetchProducts", mock.Anything).Return(nil, errUpstream)
		f.reactbd.On("FetchProducts", mock.Anything).Return(nil, errUpstream)

		assert.Empty(t, f.service.Products(t.Context()))
		assert.Len(t, f.service.WorkingCategories(t.Context()), 4)
	})
}

func TestProductsCache(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	f := newFixture(t, service.CacheTTLOpt(time.Minute), service.ClockOpt(clock))
	f.fakestore.On("FetchProducts", mock.Anything).Return(fakestoreFeed(), nil).Twice()
	f.reactbd.On("FetchProducts", mock.Anything).Return(reactbdFeed(), nil).Twice()

	ctx := t.Context()
	assert.Len(t, f.service.Products(ctx), 5)
	assert.Len(t, f.service.Featured(ctx, 8), 2)

	now = now.Add(2 * time.Minute)
	assert.Len(t, f.service.Products(ctx), 5)
}

func TestProduct(t *testing.T) {
	t.Run("FromMergedList", func(t *testing.T) {
		f := newFixture(t).withFeeds()

		p, err := f.service.Product(t.Context(), 4)
		require.NoError(t, err)
		assert.Equal(t, "Wireless Earbuds", p.Title)
		assert.Equal(t, 31, p.OriginalID)
	})

	t.Run("DirectFakeStoreFallback", func(t *testing.T) {
		f := newFixture(t)
		f.fakestore.On("FetchProducts", mock.Anything).Return(nil, errUpstream)
		f.reactbd.On("FetchProducts", mock.Anything).Return(nil, errUpstream)
		f.fakestore.On("FetchProduct", mock.Anything, 7).
			Return(domain.Product{OriginalID: 7, Title: "Ring"}, nil)

		p, err := f.service.Product(t.Context(), 7)
		require.NoError(t, err)
		assert.Equal(t, 7, p.ID)
		assert.Equal(t, "Ring", p.Title)
		assert.Equal(t, domain.SourceFakeStore, p.Source)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newFixture(t).withFeeds()

		_, err := f.service.Product(t.Context(), 42)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("DirectLookupFails", func(t *testing.T) {
		f := newFixture(t).withFeeds()
		f.fakestore.On("FetchProduct", mock.Anything, 9).
			Return(domain.Product{}, errUpstream)

		_, err := f.service.Product(t.Context(), 9)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestCategories(t *testing.T) {
	t.Run("Merged", func(t *testing.T) {
		f := newFixture(t)
		f.fakestore.On("FetchCategories", mock.Anything).
			Return([]string{"electronics", "jewelery"}, nil)
		f.reactbd.On("FetchCategories", mock.Anything).
			Return([]string{"Electronics", "Fashion"}, nil)

		assert.Equal(t,
			[]string{"electronics", "jewelery", "fashion"},
			f.service.Categories(t.Context()),
		)
	})

	t.Run("FakeStoreDown", func(t *testing.T) {
		f := newFixture(t)
		f.fakestore.On("FetchCategories", mock.Anything).Return(nil, errUpstream)
		f.reactbd.On("FetchCategories", mock.Anything).Return(nil, errUpstream)

		assert.Equal(t,
			[]string{"electronics", "jewelery", "men's clothing", "women's clothing"},
			f.service.Categories(t.Context()),
		)
	})
}

func TestDerivedViews(t *testing.T) {
	f := newFixture(t).withFeeds()
	ctx := t.Context()

	ids := func(ps []domain.Product) (out []int) {
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []int{4, 2}, ids(f.service.Featured(ctx, 8)))
	assert.Equal(t, []int{2, 4, 5}, ids(f.service.SpecialOffers(ctx, 3)))
	assert.Equal(t, []int{4}, ids(f.service.HotDeals(ctx, 4)))
	assert.Equal(t, []int{1}, ids(f.service.Premium(ctx, 8)))
	assert.Equal(t, []int{2, 5}, ids(f.service.Budget(ctx, 8)))
	assert.Equal(t, []int{4, 5}, ids(f.service.Discounted(ctx)))
	assert.Equal(t, []int{4}, ids(f.service.NewArrivals(ctx)))
	assert.Equal(t, []int{5}, ids(f.service.ByBrand(ctx, "ray")))
	assert.Len(t, f.service.InStock(ctx), 5)
	assert.Equal(t, []int{1}, ids(f.service.Search(ctx, "backpack")))
	assert.Equal(t, []int{3, 4}, ids(f.service.ProductsByCategory(ctx, "electronics")))
	assert.Equal(t, []int{2}, ids(f.service.Related(ctx, 1)))

	cs := f.service.WorkingCategories(ctx)
	require.NotEmpty(t, cs)
	assert.Equal(t, "men's clothing", cs[0].Name)
	assert.Equal(t, 2, cs[0].Count)
}

func TestProductReviews(t *testing.T) {
	t.Run("Filtered", func(t *testing.T) {
		f := newFixture(t)
		f.reactbd.On("FetchReviews", mock.Anything).Return([]domain.Review{
			{ID: 1, ProductID: 3}, {ID: 2, ProductID: 4}, {ID: 3, ProductID: 3},
		}, nil)

		rs := f.service.ProductReviews(t.Context(), 3)
		require.Len(t, rs, 2)
		assert.Equal(t, 1, rs[0].ID)
		assert.Equal(t, 3, rs[1].ID)
	})

	t.Run("Unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.reactbd.On("FetchReviews", mock.Anything).Return(nil, errUpstream)

		rs := f.service.ProductReviews(t.Context(), 3)
		assert.NotNil(t, rs)
		assert.Empty(t, rs)
	})
}

func TestComments(t *testing.T) {
	f := newFixture(t)
	f.reactbd.On("FetchComments", mock.Anything).Return([]domain.Comment{
		{ID: 1, PostID: 1}, {ID: 2, PostID: 2}, {ID: 3, PostID: 1},
	}, nil)

	assert.Len(t, f.service.Comments(t.Context(), 0), 3)
	assert.Len(t, f.service.Comments(t.Context(), 1), 2)
	assert.Empty(t, f.service.Comments(t.Context(), 9))
}

func TestProductsCopyCachedSnapshot(t *testing.T) {
	f := newFixture(t, service.CacheTTLOpt(time.Minute))
	stock := 10
	f.fakestore.On("FetchProducts", mock.Anything).Return([]domain.Product{}, nil).Once()
	f.reactbd.On("FetchProducts", mock.Anything).Return([]domain.Product{
		{OriginalID: 31, Title: "Sneakers", Stock: &stock, Size: []string{"40", "41"}},
	}, nil).Once()

	ps := f.service.Products(t.Context())
	require.Len(t, ps, 1)
	*ps[0].Stock = 0
	ps[0].Size[0] = "99"

	again := f.service.Products(t.Context())
	require.Len(t, again, 1)
	assert.Equal(t, 10, *again[0].Stock)
	assert.Equal(t, []string{"40", "41"}, again[0].Size)
}

func TestRelatedFakeStoreFallback(t *testing.T) {
	f := newFixture(t)
	f.fakestore.On("FetchProducts", mock.Anything).Return(nil, errUpstream)
	f.reactbd.On("FetchProducts", mock.Anything).Return(reactbdFeed(), nil)
	f.fakestore.On("FetchProduct", mock.Anything, 5).Return(
		domain.Product{OriginalID: 5, Title: "Portable SSD", Category: "electronics"}, nil,
	)

	related := f.service.Related(t.Context(), 5)
	assert.Equal(t, []int{1}, productIDs(related))
}

func productIDs(ps []domain.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}
