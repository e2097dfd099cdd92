package services

import "github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"

// ProductService serves the read-only catalog.
type ProductService struct {
	productRepo IProductRepository
}

func NewProductService(pr IProductRepository) *ProductService {
	return &ProductService{productRepo: pr}
}

func (s *ProductService) List() []models.Product {
	return s.productRepo.List()
}
