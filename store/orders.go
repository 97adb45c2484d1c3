package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/delsur-bakery/delsur-store/models"
)

// Orders lists every cached order, newest first.
func (s *Store) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.withCtx(ctx).Order("placed_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// OrdersByUser lists a user's cached orders, newest first.
func (s *Store) OrdersByUser(ctx context.Context, userID int) ([]models.Order, error) {
	var orders []models.Order
	err := s.withCtx(ctx).Where("user_id = ?", userID).Order("placed_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderByID returns a cached order header or nil when absent.
func (s *Store) OrderByID(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	err := s.withCtx(ctx).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderIDs returns the ids of every cached order.
func (s *Store) OrderIDs(ctx context.Context) ([]int, error) {
	var ids []int
	if err := s.withCtx(ctx).Model(&models.Order{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// OrderIDsByUser returns the ids of a user's cached orders.
func (s *Store) OrderIDsByUser(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	err := s.withCtx(ctx).Model(&models.Order{}).Where("user_id = ?", userID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// OrderLines lists the cached line items of one order.
func (s *Store) OrderLines(ctx context.Context, orderID int) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	err := s.withCtx(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// UpsertOrder inserts or replaces an order header by id.
func (s *Store) UpsertOrder(ctx context.Context, order *models.Order) error {
	if err := s.withCtx(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(order).Error; err != nil {
		return err
	}
	s.changed(TableOrders)
	return nil
}

// UpsertOrderLines inserts or replaces a batch of order lines by id.
func (s *Store) UpsertOrderLines(ctx context.Context, lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	if err := s.withCtx(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&lines).Error; err != nil {
		return err
	}
	s.changed(TableOrders)
	return nil
}

// DeleteOrders removes the given order headers.
func (s *Store) DeleteOrders(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.withCtx(ctx).Delete(&models.Order{}, ids).Error; err != nil {
		return err
	}
	s.changed(TableOrders)
	return nil
}

// DeleteOrderLinesByOrders removes every cached line belonging to the
// given orders.
func (s *Store) DeleteOrderLinesByOrders(ctx context.Context, orderIDs []int) error {
	if len(orderIDs) == 0 {
		return nil
	}
	err := s.withCtx(ctx).Where("order_id IN ?", orderIDs).Delete(&models.OrderLine{}).Error
	if err != nil {
		return err
	}
	s.changed(TableOrders)
	return nil
}

// DeleteOrderLines removes every cached line of one order.
func (s *Store) DeleteOrderLines(ctx context.Context, orderID int) error {
	err := s.withCtx(ctx).Where("order_id = ?", orderID).Delete(&models.OrderLine{}).Error
	if err != nil {
		return err
	}
	s.changed(TableOrders)
	return nil
}
