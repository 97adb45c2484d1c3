package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/delsur-bakery/delsur-store/models"
)

// Products lists cached products ordered by name.
func (s *Store) Products(ctx context.Context, includeBlocked bool) ([]models.Product, error) {
	var products []models.Product
	q := s.withCtx(ctx).Order("name ASC")
	if !includeBlocked {
		q = q.Where("blocked = ?", false)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ProductsByCategory lists cached products for one category ordered by
// name. Blocked rows are filtered out unless includeBlocked is set.
func (s *Store) ProductsByCategory(ctx context.Context, categoryID int, includeBlocked bool) ([]models.Product, error) {
	var products []models.Product
	q := s.withCtx(ctx).Where("category_id = ?", categoryID).Order("name ASC")
	if !includeBlocked {
		q = q.Where("blocked = ?", false)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByID returns a cached product or nil when absent.
func (s *Store) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := s.withCtx(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpsertProduct inserts or replaces a product by id.
func (s *Store) UpsertProduct(ctx context.Context, product *models.Product) error {
	if err := s.withCtx(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(product).Error; err != nil {
		return err
	}
	s.changed(TableProducts)
	return nil
}

// UpsertProducts inserts or replaces a batch of products by id.
func (s *Store) UpsertProducts(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := s.withCtx(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&products).Error; err != nil {
		return err
	}
	s.changed(TableProducts)
	return nil
}

// DeleteProduct removes a cached product row.
func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	if err := s.withCtx(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return err
	}
	s.changed(TableProducts)
	return nil
}
