package port

import (
	"context"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	runnerContextWg interface {
		Run(context.Context, context.CancelFunc, *sync.WaitGroup)
	}

	closer interface {
		Close()
	}
)

// Outbound: upstream catalogs.

type FakeStoreCatalog interface {
	FetchProducts(context.Context) ([]domain.Product, error)
	FetchProduct(ctx context.Context, id int) (domain.Product, error)
	FetchCategories(context.Context) ([]string, error)
}

type ReactBDCatalog interface {
	FetchProducts(context.Context) ([]domain.Product, error)
	FetchCategories(context.Context) ([]string, error)
	FetchReviews(context.Context) ([]domain.Review, error)
	FetchComments(context.Context) ([]domain.Comment, error)
}

// Outbound: client scoped stores.

type CartStorage interface {
	ReadCart(ctx context.Context, clientID string) (domain.Cart, error)
	// UpsertCartItem stores the item, replacing an item with the same product id.
	UpsertCartItem(ctx context.Context, clientID string, item domain.CartItem) error
	// IncrementCartItem adds the product with quantity 1, or bumps the
	// stored quantity by one and refreshes the product, in one step.
	IncrementCartItem(ctx context.Context, clientID string, p domain.Product) error
	DeleteCartItem(ctx context.Context, clientID string, productID int) error
	ClearCart(ctx context.Context, clientID string) error
}

type WishlistStorage interface {
	ReadWishlist(ctx context.Context, clientID string) (domain.Wishlist, error)
	// InsertWishlistEntry reports whether the entry was added.
	InsertWishlistEntry(ctx context.Context, clientID string, e domain.WishlistEntry) (bool, error)
	DeleteWishlistEntry(ctx context.Context, clientID string, productID int) error
	ClearWishlist(ctx context.Context, clientID string) error
}

type SessionStorage interface {
	ReadSession(ctx context.Context, clientID string) (domain.Session, error)
	StoreSession(ctx context.Context, clientID string, s domain.Session) error
	DeleteSession(ctx context.Context, clientID string) error
}

// Outbound: order events.

type OrdersProducer interface {
	ProduceOrder(context.Context, domain.Order) error
}

type OrderHistoryReader interface {
	ReadOrderHistory(ctx context.Context, email string) ([]domain.OrderSummary, error)
}

type OrderHistoryProcessor interface {
	runnerContextWg
	closer
}

// Inbound: core use cases.

type CatalogReader interface {
	Products(context.Context) []domain.Product
	Product(ctx context.Context, id int) (domain.Product, error)
	Categories(context.Context) []string
	WorkingCategories(context.Context) []domain.Category
	ProductsByCategory(ctx context.Context, category string) []domain.Product
	Featured(ctx context.Context, limit int) []domain.Product
	SpecialOffers(ctx context.Context, limit int) []domain.Product
	HotDeals(ctx context.Context, limit int) []domain.Product
	Premium(ctx context.Context, limit int) []domain.Product
	Budget(ctx context.Context, limit int) []domain.Product
	Search(ctx context.Context, query string) []domain.Product
	Discounted(context.Context) []domain.Product
	NewArrivals(context.Context) []domain.Product
	InStock(context.Context) []domain.Product
	ByBrand(ctx context.Context, brand string) []domain.Product
	ByType(ctx context.Context, typ string) []domain.Product
	Related(ctx context.Context, id int) []domain.Product
	ProductReviews(ctx context.Context, id int) []domain.Review
	Comments(ctx context.Context, postID int) []domain.Comment
}

type CartManager interface {
	Cart(ctx context.Context, clientID string) (domain.Cart, error)
	AddToCart(ctx context.Context, clientID string, productID int) (domain.Cart, error)
	UpdateCartQuantity(ctx context.Context, clientID string, productID, quantity int) (domain.Cart, error)
	RemoveFromCart(ctx context.Context, clientID string, productID int) (domain.Cart, error)
	ClearCart(ctx context.Context, clientID string) error
}

type WishlistManager interface {
	Wishlist(ctx context.Context, clientID string) (domain.Wishlist, error)
	AddToWishlist(ctx context.Context, clientID string, productID int) (domain.Wishlist, error)
	RemoveFromWishlist(ctx context.Context, clientID string, productID int) (domain.Wishlist, error)
	InWishlist(ctx context.Context, clientID string, productID int) (bool, error)
	ClearWishlist(ctx context.Context, clientID string) error
}

type Authenticator interface {
	Session(ctx context.Context, clientID string) (domain.Session, error)
	Login(ctx context.Context, clientID, email, password string) (domain.Session, error)
	Register(ctx context.Context, clientID, name, email, password string) (domain.Session, error)
	Logout(ctx context.Context, clientID string) error
	UpdateProfile(ctx context.Context, clientID string, upd domain.ProfileUpdate) (domain.Session, error)
}

type CheckoutProcessor interface {
	Checkout(ctx context.Context, clientID string, s domain.ShippingInfo, p domain.PaymentInfo) (domain.Order, error)
	OrderHistory(ctx context.Context, clientID string) ([]domain.OrderSummary, error)
}
