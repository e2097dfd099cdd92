package repository

import (
	"sync"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

// ReviewRepository holds product reviews in memory. Reviews are append-only;
// no edit or delete path exists.
type ReviewRepository struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Insert(review models.Review) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
}

// ListByProduct returns the reviews for a product, newest first. Reviews are
// appended in creation order, so reverse insertion order is newest-first by
// createdAt.
func (r *ReviewRepository) ListByProduct(productID int) []models.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Review{}
	for i := len(r.reviews) - 1; i >= 0; i-- {
		if r.reviews[i].ProductID == productID {
			result = append(result, r.reviews[i])
		}
	}
	return result
}
