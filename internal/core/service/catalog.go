package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/catalog"
	"github.com/niksmo/storefront/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Ids up to this value may still be resolved directly against the
// FakeStore feed when the merged catalog does not contain them.
const fakestoreDirectMaxID = 10

// Products returns a deep copy of the merged catalog, so callers may
// modify it without touching the cached snapshot.
func (s Service) Products(ctx context.Context) []domain.Product {
	cached := s.snapshot.get(ctx, s.aggregate)
	ps := make([]domain.Product, len(cached))
	for i, p := range cached {
		ps[i] = p.Clone()
	}
	return ps
}

// aggregate fetches both feeds concurrently. A failed feed is logged
// and counts as empty, so the result is partial or empty but never an
// error.
func (s Service) aggregate(ctx context.Context) []domain.Product {
	const op = "Service.aggregate"
	log := slog.With("op", op)

	var (
		g                  errgroup.Group
		fakestore, reactbd []domain.Product
	)

	g.Go(func() error {
		ps, err := s.fakestore.FetchProducts(ctx)
		if err != nil {
			log.Warn("fakestore products unavailable", "err", err)
			return nil
		}
		fakestore = ps
		return nil
	})

	g.Go(func() error {
		ps, err := s.reactbd.FetchProducts(ctx)
		if err != nil {
			log.Warn("reactbd products unavailable", "err", err)
			return nil
		}
		reactbd = ps
		return nil
	})

	_ = g.Wait()

	merged := catalog.Merge(fakestore, reactbd)
	log.Debug(
		"catalog merged",
		"fakestore", len(fakestore),
		"reactbd", len(reactbd),
		"total", len(merged),
	)
	return merged
}

func (s Service) Product(ctx context.Context, id int) (domain.Product, error) {
	return s.lookup(ctx, s.Products(ctx), id)
}

// lookup finds the product in ps and falls back to the FakeStore feed
// for the low ids.
func (s Service) lookup(
	ctx context.Context, ps []domain.Product, id int,
) (domain.Product, error) {
	const op = "Service.Product"
	log := slog.With("op", op)

	if p, ok := catalog.Find(ps, id); ok {
		return p, nil
	}

	if id >= 1 && id <= fakestoreDirectMaxID {
		p, err := s.fakestore.FetchProduct(ctx, id)
		if err == nil {
			p.ID = id
			p.Source = domain.SourceFakeStore
			return p, nil
		}
		log.Warn("fakestore direct lookup failed", "id", id, "err", err)
	}

	return domain.Product{}, fmt.Errorf(
		"%s: id %d: %w", op, id, domain.ErrProductNotFound,
	)
}

func (s Service) Categories(ctx context.Context) []string {
	const op = "Service.Categories"
	log := slog.With("op", op)

	var (
		g                  errgroup.Group
		fakestore, reactbd []string
	)

	g.Go(func() error {
		names, err := s.fakestore.FetchCategories(ctx)
		if err != nil {
			log.Warn("fakestore categories unavailable", "err", err)
			names = catalog.DefaultCategories
		}
		fakestore = names
		return nil
	})

	g.Go(func() error {
		names, err := s.reactbd.FetchCategories(ctx)
		if err != nil {
			log.Warn("reactbd categories unavailable", "err", err)
			return nil
		}
		reactbd = names
		return nil
	})

	_ = g.Wait()
	return catalog.MergeCategoryNames(fakestore, reactbd)
}

func (s Service) WorkingCategories(ctx context.Context) []domain.Category {
	return catalog.WorkingCategories(s.Products(ctx))
}

func (s Service) ProductsByCategory(
	ctx context.Context, category string,
) []domain.Product {
	return catalog.ByCategory(s.Products(ctx), category)
}

func (s Service) Featured(ctx context.Context, limit int) []domain.Product {
	return catalog.Featured(s.Products(ctx), limit)
}

func (s Service) SpecialOffers(ctx context.Context, limit int) []domain.Product {
	return catalog.SpecialOffers(s.Products(ctx), limit)
}

func (s Service) HotDeals(ctx context.Context, limit int) []domain.Product {
	return catalog.HotDeals(s.Products(ctx), limit)
}

func (s Service) Premium(ctx context.Context, limit int) []domain.Product {
	return catalog.Premium(s.Products(ctx), limit)
}

func (s Service) Budget(ctx context.Context, limit int) []domain.Product {
	return catalog.Budget(s.Products(ctx), limit)
}

func (s Service) Search(ctx context.Context, query string) []domain.Product {
	return catalog.Search(s.Products(ctx), query)
}

func (s Service) Discounted(ctx context.Context) []domain.Product {
	return catalog.Discounted(s.Products(ctx))
}

func (s Service) NewArrivals(ctx context.Context) []domain.Product {
	return catalog.NewArrivals(s.Products(ctx))
}

func (s Service) InStock(ctx context.Context) []domain.Product {
	return catalog.InStock(s.Products(ctx))
}

func (s Service) ByBrand(ctx context.Context, brand string) []domain.Product {
	return catalog.ByBrand(s.Products(ctx), brand)
}

func (s Service) ByType(ctx context.Context, typ string) []domain.Product {
	return catalog.ByType(s.Products(ctx), typ)
}

// Related resolves the product the way [Service.Product] does, so a
// product only reachable through the FakeStore fallback still gets
// related products from the merged catalog.
func (s Service) Related(ctx context.Context, id int) []domain.Product {
	ps := s.Products(ctx)
	p, err := s.lookup(ctx, ps, id)
	if err != nil {
		return []domain.Product{}
	}
	return catalog.Related(ps, p)
}

// ProductReviews returns the reviews for the product id. Reviews are
// matched on the merged id.
func (s Service) ProductReviews(ctx context.Context, id int) []domain.Review {
	const op = "Service.ProductReviews"

	reviews, err := s.reactbd.FetchReviews(ctx)
	if err != nil {
		slog.Warn("reviews unavailable", "op", op, "err", err)
		return []domain.Review{}
	}

	out := make([]domain.Review, 0)
	for _, r := range reviews {
		if r.ProductID == id {
			out = append(out, r)
		}
	}
	return out
}

// Comments returns the comments of the post, or all comments when
// postID is zero.
func (s Service) Comments(ctx context.Context, postID int) []domain.Comment {
	const op = "Service.Comments"

	comments, err := s.reactbd.FetchComments(ctx)
	if err != nil {
		slog.Warn("comments unavailable", "op", op, "err", err)
		return []domain.Comment{}
	}

	if postID == 0 {
		return comments
	}

	out := make([]domain.Comment, 0)
	for _, c := range comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}
