// Package repositories holds the sync engines: one per aggregate, each
// following the remote-first, local-fallback protocol. Reads surface
// the local cache and pull the remote collection in the background;
// writes go to the remote service first and degrade to local-only
// mutations on connectivity failures or 5xx responses.
package repositories

import (
	"context"
	"log"

	"github.com/delsur-bakery/delsur-store/models"
	"github.com/delsur-bakery/delsur-store/remote"
	"github.com/delsur-bakery/delsur-store/services"
	"github.com/delsur-bakery/delsur-store/store"
)

// CategoryRepository syncs catalog categories.
type CategoryRepository struct {
	store  *store.Store
	client *remote.Client
	images services.ImageService
}

// NewCategoryRepository wires a category sync engine.
func NewCategoryRepository(s *store.Store, client *remote.Client, images services.ImageService) *CategoryRepository {
	return &CategoryRepository{store: s, client: client, images: images}
}

// Observe emits the cached categories and re-emits on every write.
// Admin mode includes blocked rows and pulls the admin collection.
func (r *CategoryRepository) Observe(ctx context.Context, admin bool) <-chan []models.Category {
	pull := func(ctx context.Context) {
		if err := r.Sync(ctx, admin); err != nil {
			log.Printf("category pull failed, keeping cached rows: %v", err)
		}
	}
	query := func(ctx context.Context) ([]models.Category, error) {
		return r.store.Categories(ctx, admin)
	}
	return observe(ctx, r.store, store.TableCategories, pull, query)
}

// GetByID prefers the cache; on a miss it tries one remote fetch and
// caches the result. A remote failure reads as absent, not an error.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	local, err := r.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if local != nil {
		return local, nil
	}

	dto, err := r.client.Category(ctx, id)
	if err != nil {
		return nil, nil
	}
	category := remote.CategoryFromDTO(dto)
	if err := r.store.UpsertCategory(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Create resolves the image reference, creates the category remotely
// and caches the authoritative record. On a fallback-eligible failure
// the row is created locally with a client-assigned id.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.resolveImage(ctx, category); err != nil {
		return err
	}

	dto, err := r.client.CreateCategory(ctx, remote.CategoryToDTO(*category))
	if err == nil {
		saved := remote.CategoryFromDTO(dto)
		if err := r.store.UpsertCategory(ctx, &saved); err != nil {
			return err
		}
		*category = saved
		return nil
	}
	if !fallbackEligible(err) {
		return err
	}
	return r.store.UpsertCategory(ctx, category)
}

// Update replaces the category remotely and caches the returned
// record; fallback writes the caller's copy locally.
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.resolveImage(ctx, category); err != nil {
		return err
	}

	dto, err := r.client.UpdateCategory(ctx, category.ID, remote.CategoryToDTO(*category))
	if err == nil {
		saved := remote.CategoryFromDTO(dto)
		if err := r.store.UpsertCategory(ctx, &saved); err != nil {
			return err
		}
		*category = saved
		return nil
	}
	if !fallbackEligible(err) {
		return err
	}
	return r.store.UpsertCategory(ctx, category)
}

// Delete removes the category remotely, then from the cache. Fallback
// removes the cached row only.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	err := r.client.DeleteCategory(ctx, id)
	if err != nil && !fallbackEligible(err) {
		return err
	}
	return r.store.DeleteCategory(ctx, id)
}

// SetBlocked toggles the blocked flag remotely and caches the result.
func (r *CategoryRepository) SetBlocked(ctx context.Context, id int, blocked bool) error {
	dto, err := r.client.SetCategoryBlocked(ctx, id, blocked)
	if err == nil {
		saved := remote.CategoryFromDTO(dto)
		return r.store.UpsertCategory(ctx, &saved)
	}
	if !fallbackEligible(err) {
		return err
	}
	local, lerr := r.store.CategoryByID(ctx, id)
	if lerr != nil {
		return lerr
	}
	if local == nil {
		return nil
	}
	local.Blocked = blocked
	return r.store.UpsertCategory(ctx, local)
}

// Seed bulk-inserts categories locally without touching the remote.
// Used for initial population only.
func (r *CategoryRepository) Seed(ctx context.Context, categories []models.Category) error {
	return r.store.UpsertCategories(ctx, categories)
}

// Sync pulls the remote collection and upserts it wholesale. Catalog
// pulls are full snapshots, so no stale-row pruning is needed.
func (r *CategoryRepository) Sync(ctx context.Context, admin bool) error {
	var dtos []remote.CategoryDTO
	var err error
	if admin {
		dtos, err = r.client.AdminCategories(ctx)
	} else {
		dtos, err = r.client.PublicCategories(ctx)
	}
	if err != nil {
		return err
	}

	categories := make([]models.Category, 0, len(dtos))
	for _, dto := range dtos {
		categories = append(categories, remote.CategoryFromDTO(dto))
	}
	return r.store.UpsertCategories(ctx, categories)
}

func (r *CategoryRepository) resolveImage(ctx context.Context, category *models.Category) error {
	if r.images == nil {
		return nil
	}
	ref, err := r.images.EnsureRemoteRef(ctx, category.Image, "categories")
	if err != nil {
		return err
	}
	category.Image = ref
	return nil
}
