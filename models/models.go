package models

import "time"

// OrderStatus is the lifecycle state of an order. The wire strings match the
// values the storefront renders, including the space in "Payment Verification".
type OrderStatus string

const (
	OrderStatusPacking             OrderStatus = "Packing"
	OrderStatusShipped             OrderStatus = "Shipped"
	OrderStatusDelivered           OrderStatus = "Delivered"
	OrderStatusPaymentVerification OrderStatus = "Payment Verification"
)

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPacking, OrderStatusShipped, OrderStatusDelivered, OrderStatusPaymentVerification:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "Cash on Delivery"
	PaymentMethodOnline PaymentMethod = "Online"
)

// User is an account record. Email is the identity and is matched
// case-insensitively everywhere; PasswordHash is a bcrypt hash.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
}

// Product is a catalog entry. The catalog is seeded at startup and read-only;
// no exposed operation mutates it.
type Product struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	Img            string   `json:"img"`
	Stock          int      `json:"stock"`
	Category       string   `json:"category"`
	MainAccords    string   `json:"mainAccords"`
	AvailableSizes []string `json:"availableSizes"`
}

// OrderItem is a snapshot of a cart line at checkout time. Price and name are
// copied from the catalog so later catalog changes cannot rewrite history.
type OrderItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
}

type ShippingDetails struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Area       string `json:"area"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// Order is immutable after placement except for Status, which only an admin
// may change. Orders are never deleted.
type Order struct {
	ID                   string          `json:"id"`
	UserEmail            string          `json:"userEmail"`
	Items                []OrderItem     `json:"items"`
	Total                float64         `json:"total"`
	Status               OrderStatus     `json:"status"`
	ShippingDetails      ShippingDetails `json:"shippingDetails"`
	PaymentMethod        PaymentMethod   `json:"paymentMethod"`
	PaymentTransactionID string          `json:"paymentTransactionId,omitempty"`
	PaymentScreenshot    string          `json:"paymentScreenshot,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// Review is immutable once created. UserEmail is the authenticated submitter;
// Name is only the display name the client chose to show.
type Review struct {
	ID        string    `json:"id"`
	ProductID int       `json:"productId"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UserEmail string    `json:"userEmail"`
}

// Identity is the principal resolved from a bearer token.
type Identity struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
