package repository

import "github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"

// SeedProducts is the initial catalog. Prices are in the store's single base
// currency; the presentation layer handles any display conversion.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Urban Wood", Price: 1500, Img: "/images/urban-wood.jpg", Stock: 10, Category: "For Men", MainAccords: "Woody, Spicy, Aromatic", AvailableSizes: []string{"10ml", "50ml", "100ml"}},
		{ID: 2, Name: "Rose Bloom", Price: 2500, Img: "/images/rose-bloom.jpg", Stock: 8, Category: "For Women", MainAccords: "Floral, Sweet, Rose", AvailableSizes: []string{"50ml", "100ml", "200ml"}},
		{ID: 3, Name: "Floral Essence", Price: 2000, Img: "/images/floral-essence.jpg", Stock: 5, Category: "Unisex", MainAccords: "Fresh, Light, White Floral", AvailableSizes: []string{"10ml", "50ml", "100ml"}},
		{ID: 4, Name: "Citrus Fresh", Price: 1800, Img: "/images/citrus-fresh.jpg", Stock: 12, Category: "For Women", MainAccords: "Citrus, Fresh, Green", AvailableSizes: []string{"50ml", "100ml"}},
		{ID: 5, Name: "Oud Majestic", Price: 4500, Img: "/images/oud-majestic.jpg", Stock: 7, Category: "For Men", MainAccords: "Oud, Woody, Amber", AvailableSizes: []string{"50ml", "100ml"}},
		{ID: 6, Name: "Ocean Breeze", Price: 1200, Img: "/images/ocean-breeze.jpg", Stock: 15, Category: "Unisex", MainAccords: "Aquatic, Fresh, Citrus", AvailableSizes: []string{"10ml", "50ml", "100ml", "200ml"}},
		{ID: 7, Name: "Vanilla Dream", Price: 2200, Img: "/images/vanilla-dream.jpg", Stock: 9, Category: "For Women", MainAccords: "Sweet, Vanilla, Powdery", AvailableSizes: []string{"50ml", "100ml"}},
		{ID: 8, Name: "Leather Intense", Price: 3800, Img: "/images/leather-intense.jpg", Stock: 4, Category: "For Men", MainAccords: "Leather, Smoky, Woody", AvailableSizes: []string{"100ml", "200ml"}},
	}
}
