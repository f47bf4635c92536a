package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ReactBDCatalog = (*ReactBD)(nil)

type reactBDProduct struct {
	ID              int        `json:"_id"`
	Title           string     `json:"title"`
	Price           flexFloat  `json:"price"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Image           string     `json:"image"`
	Rating          flexFloat  `json:"rating"`
	IsNew           bool       `json:"isNew"`
	OldPrice        flexString `json:"oldPrice"`
	DiscountedPrice flexFloat  `json:"discountedPrice"`
	Stock           flexFloat  `json:"stock"`
	Brand           string     `json:"brand"`
	Size            []string   `json:"size"`
	Type            string     `json:"type"`
}

// toDomain maps the item. The feed carries no rating count, it is
// derived from the item id so the value is stable between fetches.
func (p reactBDProduct) toDomain() domain.Product {
	stock := int(p.Stock)
	size := p.Size
	if size == nil {
		size = []string{}
	}
	return domain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       float64(p.Price),
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating: domain.Rating{
			Rate:  float64(p.Rating),
			Count: ratingCount(p.ID),
		},
		IsNew:           p.IsNew,
		OldPrice:        string(p.OldPrice),
		DiscountedPrice: float64(p.DiscountedPrice),
		Stock:           &stock,
		Brand:           p.Brand,
		Size:            size,
		Type:            p.Type,
		OriginalID:      p.ID,
		Source:          domain.SourceReactBD,
	}
}

func ratingCount(id int) int {
	if id < 0 {
		id = -id
	}
	return id%100 + 1
}

type reactBDCategory struct {
	Name string `json:"name"`
}

type reactBDReview struct {
	ID        int       `json:"_id"`
	UserID    int       `json:"userId"`
	ProductID int       `json:"productId"`
	Rating    flexFloat `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt string    `json:"createdAt"`
}

type reactBDComment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// envelope accepts both {"data": [...]} and a bare array.
type envelope[T any] struct {
	Data []T
}

func (e *envelope[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &e.Data)
	}
	var obj struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	e.Data = obj.Data
	return nil
}

// flexString accepts a JSON string or number.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	if string(b) == "null" {
		*s = ""
		return nil
	}
	*s = flexString(b)
	return nil
}

// A ReactBD fetches the ReactBD fake store server.
type ReactBD struct {
	cl client
}

func NewReactBD(baseURL string, opts ...Opt) (ReactBD, error) {
	const op = "NewReactBD"

	cl, err := newClient(baseURL, opts...)
	if err != nil {
		return ReactBD{}, fmt.Errorf("%s: %w", op, err)
	}
	return ReactBD{cl: cl}, nil
}

func (r ReactBD) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ReactBD.FetchProducts"

	var res envelope[reactBDProduct]
	if err := r.cl.getJSON(ctx, "/products", &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, len(res.Data))
	for i, p := range res.Data {
		ps[i] = p.toDomain()
	}
	return ps, nil
}

func (r ReactBD) FetchCategories(ctx context.Context) ([]string, error) {
	const op = "ReactBD.FetchCategories"

	var res envelope[reactBDCategory]
	if err := r.cl.getJSON(ctx, "/categories", &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names := make([]string, 0, len(res.Data))
	for _, c := range res.Data {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

func (r ReactBD) FetchReviews(ctx context.Context) ([]domain.Review, error) {
	const op = "ReactBD.FetchReviews"

	var res envelope[reactBDReview]
	if err := r.cl.getJSON(ctx, "/reviews", &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rs := make([]domain.Review, len(res.Data))
	for i, v := range res.Data {
		rs[i] = domain.Review{
			ID:        v.ID,
			UserID:    v.UserID,
			ProductID: v.ProductID,
			Rating:    float64(v.Rating),
			Comment:   v.Comment,
			CreatedAt: v.CreatedAt,
		}
	}
	return rs, nil
}

func (r ReactBD) FetchComments(ctx context.Context) ([]domain.Comment, error) {
	const op = "ReactBD.FetchComments"

	var res envelope[reactBDComment]
	if err := r.cl.getJSON(ctx, "/comments", &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs := make([]domain.Comment, len(res.Data))
	for i, c := range res.Data {
		cs[i] = domain.Comment(c)
	}
	return cs, nil
}
