package upstream

import (
	"context"
	"fmt"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.FakeStoreCatalog = (*FakeStore)(nil)

type fakeStoreProduct struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Price       flexFloat `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Rating      *struct {
		Rate  flexFloat `json:"rate"`
		Count int       `json:"count"`
	} `json:"rating"`
}

func (p fakeStoreProduct) toDomain() domain.Product {
	v := domain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       float64(p.Price),
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		OriginalID:  p.ID,
		Source:      domain.SourceFakeStore,
	}
	if p.Rating != nil {
		v.Rating = domain.Rating{Rate: float64(p.Rating.Rate), Count: p.Rating.Count}
	}
	return v
}

// A FakeStore fetches the catalog of the FakeStore API.
type FakeStore struct {
	cl client
}

func NewFakeStore(baseURL string, opts ...Opt) (FakeStore, error) {
	const op = "NewFakeStore"

	cl, err := newClient(baseURL, opts...)
	if err != nil {
		return FakeStore{}, fmt.Errorf("%s: %w", op, err)
	}
	return FakeStore{cl: cl}, nil
}

func (s FakeStore) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "FakeStore.FetchProducts"

	var res []fakeStoreProduct
	if err := s.cl.getJSON(ctx, "/products", &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, len(res))
	for i, p := range res {
		ps[i] = p.toDomain()
	}
	return ps, nil
}

func (s FakeStore) FetchProduct(ctx context.Context, id int) (domain.Product, error) {
	const op = "FakeStore.FetchProduct"

	var res *fakeStoreProduct
	if err := s.cl.getJSON(ctx, "/products/"+strconv.Itoa(id), &res); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	// FakeStore answers 200 with an empty body for unknown ids.
	if res == nil || res.ID == 0 {
		return domain.Product{}, fmt.Errorf("%s: id %d: %w", op, id, domain.ErrProductNotFound)
	}
	return res.toDomain(), nil
}

func (s FakeStore) FetchCategories(ctx context.Context) ([]string, error) {
	const op = "FakeStore.FetchCategories"

	var res []string
	if err := s.cl.getJSON(ctx, "/products/categories", &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}
