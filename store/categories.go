package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/delsur-bakery/delsur-store/models"
)

// Categories lists cached categories ordered by name. Blocked rows are
// filtered out unless includeBlocked is set (admin views).
func (s *Store) Categories(ctx context.Context, includeBlocked bool) ([]models.Category, error) {
	var categories []models.Category
	q := s.withCtx(ctx).Order("name ASC")
	if !includeBlocked {
		q = q.Where("blocked = ?", false)
	}
	if err := q.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryByID returns a cached category or nil when absent.
func (s *Store) CategoryByID(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	err := s.withCtx(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpsertCategory inserts or replaces a category by id. A zero id gets
// a locally assigned one.
func (s *Store) UpsertCategory(ctx context.Context, category *models.Category) error {
	if err := s.withCtx(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(category).Error; err != nil {
		return err
	}
	s.changed(TableCategories)
	return nil
}

// UpsertCategories inserts or replaces a batch of categories by id.
func (s *Store) UpsertCategories(ctx context.Context, categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}
	if err := s.withCtx(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&categories).Error; err != nil {
		return err
	}
	s.changed(TableCategories)
	return nil
}

// DeleteCategory removes a cached category row.
func (s *Store) DeleteCategory(ctx context.Context, id int) error {
	if err := s.withCtx(ctx).Delete(&models.Category{}, id).Error; err != nil {
		return err
	}
	s.changed(TableCategories)
	return nil
}
