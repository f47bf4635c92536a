package httphandler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/niksmo/storefront/internal/core/catalog"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

type CatalogHandler struct {
	catalog port.CatalogReader
}

func RegisterCatalog(r chi.Router, c port.CatalogReader) {
	h := CatalogHandler{c}
	r.Get("/v1/products", h.GetProducts)
	r.Get("/v1/products/{id}", h.GetProduct)
	r.Get("/v1/products/{id}/related", h.GetRelated)
	r.Get("/v1/products/{id}/reviews", h.GetReviews)
	r.Get("/v1/collections/{name}", h.GetCollection)
	r.Get("/v1/categories", h.GetCategories)
	r.Get("/v1/categories/working", h.GetWorkingCategories)
	r.Get("/v1/categories/{name}/products", h.GetCategoryProducts)
	r.Get("/v1/comments", h.GetComments)
}

// GetProducts lists the merged catalog. The q, brand, type and filter
// query parameters narrow the list and combine. All of them apply to
// one catalog read.
func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var views []func([]domain.Product) []domain.Product
	if v := q.Get("q"); v != "" {
		views = append(views, func(ps []domain.Product) []domain.Product {
			return catalog.Search(ps, v)
		})
	}
	if v := q.Get("brand"); v != "" {
		views = append(views, func(ps []domain.Product) []domain.Product {
			return catalog.ByBrand(ps, v)
		})
	}
	if v := q.Get("type"); v != "" {
		views = append(views, func(ps []domain.Product) []domain.Product {
			return catalog.ByType(ps, v)
		})
	}
	switch q.Get("filter") {
	case "":
	case "new":
		views = append(views, catalog.NewArrivals)
	case "discounted":
		views = append(views, catalog.Discounted)
	case "in-stock":
		views = append(views, catalog.InStock)
	default:
		writeError(w, http.StatusBadRequest, "filter must be one of new, discounted, in-stock")
		return
	}

	ps := h.catalog.Products(r.Context())
	for _, view := range views {
		ps = view(ps)
	}
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.catalog.Product(r.Context(), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h CatalogHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toProducts(h.catalog.Related(r.Context(), id)))
}

func (h CatalogHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toReviews(h.catalog.ProductReviews(r.Context(), id)))
}

var collectionLimits = map[string]int{
	"featured":       catalog.DefaultFeaturedLimit,
	"special-offers": catalog.DefaultSpecialOfferLimit,
	"hot-deals":      catalog.DefaultHotDealLimit,
	"premium":        catalog.DefaultPremiumLimit,
	"budget":         catalog.DefaultBudgetLimit,
}

func (h CatalogHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	limit, ok := collectionLimits[name]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown collection "+strconv.Quote(name))
		return
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	ctx := r.Context()
	var ps []domain.Product
	switch name {
	case "featured":
		ps = h.catalog.Featured(ctx, limit)
	case "special-offers":
		ps = h.catalog.SpecialOffers(ctx, limit)
	case "hot-deals":
		ps = h.catalog.HotDeals(ctx, limit)
	case "premium":
		ps = h.catalog.Premium(ctx, limit)
	case "budget":
		ps = h.catalog.Budget(ctx, limit)
	}
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Categories(r.Context()))
}

func (h CatalogHandler) GetWorkingCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCategories(h.catalog.WorkingCategories(r.Context())))
}

// GetCategoryProducts takes the category name percent-encoded or not,
// e.g. "home%20%26%20garden".
func (h CatalogHandler) GetCategoryProducts(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category name")
		return
	}
	writeJSON(w, http.StatusOK, toProducts(h.catalog.ProductsByCategory(r.Context(), name)))
}

// GetComments returns all comments, or the comments of one post when
// post_id is set.
func (h CatalogHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	var postID int
	if v := r.URL.Query().Get("post_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "post_id must be a positive integer")
			return
		}
		postID = n
	}
	writeJSON(w, http.StatusOK, toComments(h.catalog.Comments(r.Context(), postID)))
}
