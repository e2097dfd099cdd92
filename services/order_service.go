package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/apperrors"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

type IOrderRepository interface {
	Insert(order models.Order)
	FindByID(orderID string) (models.Order, error)
	FindByIDAndEmail(orderID, email string) (models.Order, error)
	ListByEmail(email string) []models.Order
	ListAll() []models.Order
	UpdateStatus(orderID string, status models.OrderStatus) (models.Order, error)
	ExistsByEmailAndProduct(email string, productID int) bool
}

type IProductRepository interface {
	List() []models.Product
	FindByID(id int) (models.Product, error)
}

// PlaceOrderInput is what a caller may influence about a new order. The owner
// is never part of it; it is always the authenticated identity.
type PlaceOrderInput struct {
	Items                []OrderItemInput
	ShippingDetails      models.ShippingDetails
	PaymentMethod        models.PaymentMethod
	PaymentTransactionID string
	PaymentScreenshot    string
}

type OrderItemInput struct {
	ProductID int
	Quantity  int
	Size      string
}

// forwardTransitions is the intended status progression. Admin writes outside
// it are accepted but logged, since the dashboard relies on being able to
// override any state.
var forwardTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPacking:             {models.OrderStatusShipped},
	models.OrderStatusShipped:             {models.OrderStatusDelivered},
	models.OrderStatusDelivered:           {},
	models.OrderStatusPaymentVerification: {models.OrderStatusPacking, models.OrderStatusShipped},
}

// OrderService owns the order ledger rules: placement, tracking, listing,
// admin status changes and the purchase check that gates reviews.
type OrderService struct {
	orderRepo   IOrderRepository
	productRepo IProductRepository
	log         *zap.Logger
}

func NewOrderService(or IOrderRepository, pr IProductRepository, log *zap.Logger) *OrderService {
	return &OrderService{orderRepo: or, productRepo: pr, log: log}
}

// PlaceOrder creates an order owned by the caller. Item names and prices are
// snapshotted from the catalog and the total is computed server-side, so the
// client cannot price its own cart.
func (s *OrderService) PlaceOrder(identity models.Identity, input PlaceOrderInput) (models.Order, error) {
	if len(input.Items) == 0 {
		return models.Order{}, apperrors.InvalidInput("No order items")
	}
	if input.PaymentMethod != models.PaymentMethodCOD && input.PaymentMethod != models.PaymentMethodOnline {
		return models.Order{}, apperrors.InvalidInput("Unknown payment method")
	}

	var items []models.OrderItem
	var total float64
	for _, in := range input.Items {
		if in.Quantity <= 0 {
			return models.Order{}, apperrors.InvalidInput("Item quantity must be positive")
		}
		product, err := s.productRepo.FindByID(in.ProductID)
		if err != nil {
			return models.Order{}, apperrors.InvalidInput("Unknown product in order items")
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  in.Quantity,
			Size:      in.Size,
		})
		total += product.Price * float64(in.Quantity)
	}

	status := models.OrderStatusPacking
	if input.PaymentMethod == models.PaymentMethodOnline {
		status = models.OrderStatusPaymentVerification
	}

	order := models.Order{
		ID:                   newOrderID(),
		UserEmail:            identity.Email,
		Items:                items,
		Total:                total,
		Status:               status,
		ShippingDetails:      input.ShippingDetails,
		PaymentMethod:        input.PaymentMethod,
		PaymentTransactionID: input.PaymentTransactionID,
		PaymentScreenshot:    input.PaymentScreenshot,
		CreatedAt:            time.Now().UTC(),
	}

	s.orderRepo.Insert(order)

	// Stand-in for the confirmation email integration.
	s.log.Info("order confirmation email sent",
		zap.String("to", order.UserEmail),
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
	)

	return order, nil
}

// TrackOrder looks up an order by its (id, email) pair. It needs no token so
// a guest can follow a shared tracking link.
func (s *OrderService) TrackOrder(orderID, email string) (models.Order, error) {
	order, err := s.orderRepo.FindByIDAndEmail(orderID, email)
	if err != nil {
		return models.Order{}, apperrors.NotFound("Order not found")
	}
	return order, nil
}

// ListOwn returns the caller's orders, newest first.
func (s *OrderService) ListOwn(identity models.Identity) []models.Order {
	return s.orderRepo.ListByEmail(identity.Email)
}

// ListAll returns every order, newest first. Callers must have passed the
// admin gate.
func (s *OrderService) ListAll() []models.Order {
	return s.orderRepo.ListAll()
}

// SetStatus applies an admin status change. Any known status is accepted for
// any order; a write off the intended Packing -> Shipped -> Delivered path is
// only logged.
func (s *OrderService) SetStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	if !status.IsValid() {
		return models.Order{}, apperrors.InvalidInput("Unknown order status")
	}

	if current, err := s.orderRepo.FindByID(orderID); err == nil && !isForward(current.Status, status) {
		s.log.Warn("order status set outside the usual progression",
			zap.String("order_id", orderID),
			zap.String("from", string(current.Status)),
			zap.String("to", string(status)),
		)
	}

	order, err := s.orderRepo.UpdateStatus(orderID, status)
	if err != nil {
		return models.Order{}, apperrors.NotFound("Order not found")
	}
	return order, nil
}

// HasPurchased reports whether any of the identity's orders contains the
// given product.
func (s *OrderService) HasPurchased(identity models.Identity, productID int) bool {
	return s.orderRepo.ExistsByEmailAndProduct(identity.Email, productID)
}

func isForward(from, to models.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range forwardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// newOrderID keeps the storefront's human-readable HM- prefix but draws the
// suffix from a UUID instead of the wall clock, so rapid concurrent checkouts
// cannot collide.
func newOrderID() string {
	return "HM-" + shortID()
}

func shortID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
