package repository

import (
	"sync"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

// ProductRepository holds the catalog. It is seeded once at startup and no
// exposed operation mutates it; the lock exists so a future admin surface can
// write safely.
type ProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewProductRepository(seed []models.Product) *ProductRepository {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return &ProductRepository{products: products}
}

func (r *ProductRepository) List() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Product, len(r.products))
	copy(result, r.products)
	return result
}

func (r *ProductRepository) FindByID(id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}
