package httphandler

import (
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	Product struct {
		ID          int     `json:"id"`
		Title       string  `json:"title"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Image       string  `json:"image"`
		Rating      Rating  `json:"rating"`

		IsNew           bool     `json:"is_new,omitempty"`
		OldPrice        string   `json:"old_price,omitempty"`
		DiscountedPrice float64  `json:"discounted_price,omitempty"`
		Stock           *int     `json:"stock,omitempty"`
		Brand           string   `json:"brand,omitempty"`
		Size            []string `json:"size,omitempty"`
		Type            string   `json:"type,omitempty"`

		OriginalID int    `json:"original_id"`
		Source     string `json:"source"`
	}

	Rating struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	}

	Category struct {
		Name        string `json:"name"`
		Count       int    `json:"count"`
		DisplayName string `json:"display_name"`
	}

	Review struct {
		ID        int     `json:"id"`
		UserID    int     `json:"user_id"`
		ProductID int     `json:"product_id"`
		Rating    float64 `json:"rating"`
		Comment   string  `json:"comment"`
		CreatedAt string  `json:"created_at"`
	}

	Comment struct {
		ID     int    `json:"id"`
		PostID int    `json:"post_id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Body   string `json:"body"`
	}
)

type (
	CartItem struct {
		Product   Product `json:"product"`
		Quantity  int     `json:"quantity"`
		LineTotal float64 `json:"line_total"`
	}

	Cart struct {
		Items      []CartItem `json:"items"`
		TotalItems int        `json:"total_items"`
		TotalPrice float64    `json:"total_price"`
	}

	Wishlist struct {
		Items []Product `json:"items"`
		Count int       `json:"count"`
	}

	WishlistStatus struct {
		ProductID  int  `json:"product_id"`
		InWishlist bool `json:"in_wishlist"`
	}
)

type (
	User struct {
		ID     string `json:"id"`
		Email  string `json:"email"`
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}

	Session struct {
		User            *User `json:"user"`
		IsAuthenticated bool  `json:"is_authenticated"`
	}
)

type (
	ShippingInfo struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
		City      string `json:"city"`
		State     string `json:"state"`
		ZipCode   string `json:"zip_code"`
	}

	PaymentInfo struct {
		CardNumber string `json:"card_number"`
		ExpiryDate string `json:"expiry_date"`
		CVV        string `json:"cvv"`
		CardName   string `json:"card_name"`
	}

	OrderItem struct {
		ProductID int     `json:"product_id"`
		Title     string  `json:"title"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	}

	Order struct {
		ID                string       `json:"id"`
		Number            string       `json:"number"`
		Email             string       `json:"email"`
		PlacedAt          time.Time    `json:"placed_at"`
		EstimatedDelivery time.Time    `json:"estimated_delivery"`
		Items             []OrderItem  `json:"items"`
		Subtotal          float64      `json:"subtotal"`
		Tax               float64      `json:"tax"`
		Shipping          float64      `json:"shipping"`
		Total             float64      `json:"total"`
		PaymentMethod     string       `json:"payment_method"`
		ShippingAddress   ShippingInfo `json:"shipping_address"`
	}

	OrderSummary struct {
		Number   string    `json:"number"`
		PlacedAt time.Time `json:"placed_at"`
		Items    int       `json:"items"`
		Total    float64   `json:"total"`
	}
)

// Request bodies.
type (
	productRequest struct {
		ProductID int `json:"product_id"`
	}

	quantityRequest struct {
		Quantity *int `json:"quantity"`
	}

	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	registerRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	profileRequest struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Avatar string `json:"avatar"`
	}

	checkoutRequest struct {
		Shipping ShippingInfo `json:"shipping"`
		Payment  PaymentInfo  `json:"payment"`
	}
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func toProduct(p domain.Product) Product {
	return Product{
		ID:              p.ID,
		Title:           p.Title,
		Price:           p.Price,
		Description:     p.Description,
		Category:        p.Category,
		Image:           p.Image,
		Rating:          Rating{Rate: p.Rating.Rate, Count: p.Rating.Count},
		IsNew:           p.IsNew,
		OldPrice:        p.OldPrice,
		DiscountedPrice: p.DiscountedPrice,
		Stock:           p.Stock,
		Brand:           p.Brand,
		Size:            p.Size,
		Type:            p.Type,
		OriginalID:      p.OriginalID,
		Source:          string(p.Source),
	}
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = toProduct(p)
	}
	return out
}

func toCategories(cs []domain.Category) []Category {
	out := make([]Category, len(cs))
	for i, c := range cs {
		out[i] = Category(c)
	}
	return out
}

func toReviews(rs []domain.Review) []Review {
	out := make([]Review, len(rs))
	for i, r := range rs {
		out[i] = Review(r)
	}
	return out
}

func toComments(cs []domain.Comment) []Comment {
	out := make([]Comment, len(cs))
	for i, c := range cs {
		out[i] = Comment(c)
	}
	return out
}

func toCart(c domain.Cart) Cart {
	items := make([]CartItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = CartItem{
			Product:   toProduct(item.Product),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().Round(2).InexactFloat64(),
		}
	}
	return Cart{
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.Subtotal().Round(2).InexactFloat64(),
	}
}

func toWishlist(w domain.Wishlist) Wishlist {
	items := make([]Product, len(w.Entries))
	for i, e := range w.Entries {
		items[i] = toProduct(e.Product)
	}
	return Wishlist{Items: items, Count: w.Count()}
}

func toSession(s domain.Session) Session {
	out := Session{IsAuthenticated: s.IsAuthenticated}
	if s.User != nil {
		u := User(*s.User)
		out.User = &u
	}
	return out
}

func (s ShippingInfo) toDomain() domain.ShippingInfo {
	return domain.ShippingInfo(s)
}

func (p PaymentInfo) toDomain() domain.PaymentInfo {
	return domain.PaymentInfo(p)
}

func toOrder(o domain.Order) Order {
	items := make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItem(item)
	}
	return Order{
		ID:                o.ID,
		Number:            o.Number,
		Email:             o.Email,
		PlacedAt:          o.PlacedAt,
		EstimatedDelivery: o.EstimatedDelivery,
		Items:             items,
		Subtotal:          o.Subtotal.InexactFloat64(),
		Tax:               o.Tax.InexactFloat64(),
		Shipping:          o.Shipping.InexactFloat64(),
		Total:             o.Total.InexactFloat64(),
		PaymentMethod:     o.PaymentMethod,
		ShippingAddress:   ShippingInfo(o.ShippingAddress),
	}
}

func toOrderSummaries(vs []domain.OrderSummary) []OrderSummary {
	out := make([]OrderSummary, len(vs))
	for i, v := range vs {
		out[i] = OrderSummary(v)
	}
	return out
}
