package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/delsur-bakery/delsur-store/models"
)

// Users lists every cached user ordered by surname then name.
func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.withCtx(ctx).Order("surname ASC, name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UserByID returns a cached user or nil when absent.
func (s *Store) UserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := s.withCtx(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByEmail returns a cached user by email or nil when absent.
func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.withCtx(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByNationalID returns a cached user by national id or nil when
// absent.
func (s *Store) UserByNationalID(ctx context.Context, nationalID string) (*models.User, error) {
	var user models.User
	err := s.withCtx(ctx).Where("national_id = ?", nationalID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// PasswordHashes snapshots the locally stored password hash per user
// id. A users pull never carries passwords, so the previous hashes are
// carried over to keep offline login working after a sync.
func (s *Store) PasswordHashes(ctx context.Context) (map[int]string, error) {
	var users []models.User
	if err := s.withCtx(ctx).Select("id", "password_hash").Find(&users).Error; err != nil {
		return nil, err
	}
	hashes := make(map[int]string, len(users))
	for _, u := range users {
		hashes[u.ID] = u.PasswordHash
	}
	return hashes, nil
}

// UpsertUser inserts or replaces a user by id.
func (s *Store) UpsertUser(ctx context.Context, user *models.User) error {
	if err := s.withCtx(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(user).Error; err != nil {
		return err
	}
	s.changed(TableUsers)
	return nil
}

// UpsertUsers inserts or replaces a batch of users by id.
func (s *Store) UpsertUsers(ctx context.Context, users []models.User) error {
	if len(users) == 0 {
		return nil
	}
	if err := s.withCtx(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&users).Error; err != nil {
		return err
	}
	s.changed(TableUsers)
	return nil
}

// DeleteUser removes a cached user row.
func (s *Store) DeleteUser(ctx context.Context, id int) error {
	if err := s.withCtx(ctx).Delete(&models.User{}, id).Error; err != nil {
		return err
	}
	s.changed(TableUsers)
	return nil
}
