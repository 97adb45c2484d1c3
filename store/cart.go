package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/delsur-bakery/delsur-store/models"
)

// CartItems lists a user's cached cart lines in insertion order.
func (s *Store) CartItems(ctx context.Context, userID int) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.withCtx(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CartItemByID returns a cached cart line or nil when absent.
func (s *Store) CartItemByID(ctx context.Context, id int) (*models.CartItem, error) {
	var item models.CartItem
	err := s.withCtx(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CartItemByKey looks up the line identified by (user, product,
// normalized message) — the cart line identity key.
func (s *Store) CartItemByKey(ctx context.Context, userID, productID int, message string) (*models.CartItem, error) {
	var item models.CartItem
	err := s.withCtx(ctx).
		Where("user_id = ? AND product_id = ? AND message = ?", userID, productID, message).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CartItemIDs returns the ids of a user's cached cart lines, used for
// stale-row pruning against a remote pull.
func (s *Store) CartItemIDs(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	err := s.withCtx(ctx).Model(&models.CartItem{}).Where("user_id = ?", userID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UpsertCartItem inserts or replaces a cart line by id.
func (s *Store) UpsertCartItem(ctx context.Context, item *models.CartItem) error {
	if err := s.withCtx(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(item).Error; err != nil {
		return err
	}
	s.changed(TableCartItems)
	return nil
}

// UpsertCartItems inserts or replaces a batch of cart lines by id.
func (s *Store) UpsertCartItems(ctx context.Context, items []models.CartItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := s.withCtx(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&items).Error; err != nil {
		return err
	}
	s.changed(TableCartItems)
	return nil
}

// DeleteCartItem removes one cached cart line.
func (s *Store) DeleteCartItem(ctx context.Context, id int) error {
	if err := s.withCtx(ctx).Delete(&models.CartItem{}, id).Error; err != nil {
		return err
	}
	s.changed(TableCartItems)
	return nil
}

// DeleteCartItems removes the given cached cart lines.
func (s *Store) DeleteCartItems(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.withCtx(ctx).Delete(&models.CartItem{}, ids).Error; err != nil {
		return err
	}
	s.changed(TableCartItems)
	return nil
}

// ClearCart removes every cached cart line for a user.
func (s *Store) ClearCart(ctx context.Context, userID int) error {
	if err := s.withCtx(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	s.changed(TableCartItems)
	return nil
}
