package models

import (
	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetAllProducts loads the full catalog in a stable order. It is the source
// for the in-memory snapshot built once at startup.
func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Category").
		Order("products.id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
