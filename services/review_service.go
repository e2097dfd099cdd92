package services

import (
	"strings"
	"time"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/apperrors"
	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

type IReviewRepository interface {
	Insert(review models.Review)
	ListByProduct(productID int) []models.Review
}

// IPurchaseChecker is the slice of the order ledger the review service needs:
// proof that the caller has bought the product.
type IPurchaseChecker interface {
	HasPurchased(identity models.Identity, productID int) bool
}

// ReviewService gates review creation on purchase verification and serves the
// public per-product listing.
type ReviewService struct {
	reviewRepo  IReviewRepository
	productRepo IProductRepository
	purchases   IPurchaseChecker
}

func NewReviewService(rr IReviewRepository, pr IProductRepository, pc IPurchaseChecker) *ReviewService {
	return &ReviewService{reviewRepo: rr, productRepo: pr, purchases: pc}
}

// AddReview stores a review for a product the caller has purchased. The
// authenticated email is recorded regardless of the display name the client
// sends.
func (s *ReviewService) AddReview(identity models.Identity, productID int, name string, rating int, comment string) (models.Review, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		return models.Review{}, apperrors.NotFound("Product not found")
	}

	if !s.purchases.HasPurchased(identity, productID) {
		return models.Review{}, apperrors.Forbidden("You must purchase this product to leave a review.")
	}

	if rating < 1 || rating > 5 {
		return models.Review{}, apperrors.InvalidInput("Rating must be between 1 and 5")
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(comment) == "" {
		return models.Review{}, apperrors.InvalidInput("Name and comment are required")
	}

	review := models.Review{
		ID:        "REV-" + shortID(),
		ProductID: productID,
		Name:      name,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
		UserEmail: identity.Email,
	}

	s.reviewRepo.Insert(review)
	return review, nil
}

// ListByProduct returns a product's reviews, newest first. Public.
func (s *ReviewService) ListByProduct(productID int) []models.Review {
	return s.reviewRepo.ListByProduct(productID)
}
