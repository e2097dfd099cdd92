package repository

import (
	"strings"
	"sync"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

// OrderRepository is a logically append-only collection of orders. Status is
// the only field mutated after insert, and orders are never removed. All
// read-modify-write sequences hold the write lock end to end.
//
// Methods return copies so callers can never mutate shared state outside the
// lock.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Insert(order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
}

func (r *OrderRepository) FindByID(orderID string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// FindByIDAndEmail matches on the exact (id, email) pair, both
// case-insensitive, so a guest with a shared tracking link needs no token.
func (r *OrderRepository) FindByIDAndEmail(orderID, email string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if strings.EqualFold(o.ID, orderID) && strings.EqualFold(o.UserEmail, email) {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// ListByEmail returns the user's orders, newest first. Inserts happen in
// creation order, so reverse insertion order is newest-first by createdAt and
// stays deterministic when timestamps tie.
func (r *OrderRepository) ListByEmail(email string) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Order{}
	for i := len(r.orders) - 1; i >= 0; i-- {
		if strings.EqualFold(r.orders[i].UserEmail, email) {
			result = append(result, r.orders[i])
		}
	}
	return result
}

// ListAll returns every order, newest first.
func (r *OrderRepository) ListAll() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		result = append(result, r.orders[i])
	}
	return result
}

// UpdateStatus sets the status of the order with the given id. The find and
// the mutation happen under one write lock.
func (r *OrderRepository) UpdateStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == orderID {
			r.orders[i].Status = status
			return r.orders[i], nil
		}
	}
	return models.Order{}, ErrNotFound
}

// ExistsByEmailAndProduct reports whether the user owns at least one order
// containing the given product.
func (r *OrderRepository) ExistsByEmailAndProduct(email string, productID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if !strings.EqualFold(o.UserEmail, email) {
			continue
		}
		for _, item := range o.Items {
			if item.ProductID == productID {
				return true
			}
		}
	}
	return false
}
