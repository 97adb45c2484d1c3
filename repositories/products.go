package repositories

import (
	"context"
	"log"

	"github.com/delsur-bakery/delsur-store/models"
	"github.com/delsur-bakery/delsur-store/remote"
	"github.com/delsur-bakery/delsur-store/services"
	"github.com/delsur-bakery/delsur-store/store"
)

// ProductRepository syncs catalog products.
type ProductRepository struct {
	store  *store.Store
	client *remote.Client
	images services.ImageService
}

// NewProductRepository wires a product sync engine.
func NewProductRepository(s *store.Store, client *remote.Client, images services.ImageService) *ProductRepository {
	return &ProductRepository{store: s, client: client, images: images}
}

// Observe emits the cached catalog and re-emits on every write.
func (r *ProductRepository) Observe(ctx context.Context, admin bool) <-chan []models.Product {
	pull := func(ctx context.Context) {
		if err := r.Sync(ctx); err != nil {
			log.Printf("product pull failed, keeping cached rows: %v", err)
		}
	}
	query := func(ctx context.Context) ([]models.Product, error) {
		return r.store.Products(ctx, admin)
	}
	return observe(ctx, r.store, store.TableProducts, pull, query)
}

// ObserveByCategory emits a category's cached products and re-emits on
// every write, pulling the scoped remote collection in the background.
func (r *ProductRepository) ObserveByCategory(ctx context.Context, categoryID int, admin bool) <-chan []models.Product {
	pull := func(ctx context.Context) {
		if err := r.syncByCategory(ctx, categoryID, admin); err != nil {
			log.Printf("product pull for category %d failed, keeping cached rows: %v", categoryID, err)
		}
	}
	query := func(ctx context.Context) ([]models.Product, error) {
		return r.store.ProductsByCategory(ctx, categoryID, admin)
	}
	return observe(ctx, r.store, store.TableProducts, pull, query)
}

// GetByID prefers the cache; on a miss it tries one remote fetch and
// caches the result. A remote failure reads as absent.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	local, err := r.store.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if local != nil {
		return local, nil
	}

	dto, err := r.client.Product(ctx, id)
	if err != nil {
		return nil, nil
	}
	product := remote.ProductFromDTO(dto)
	if err := r.store.UpsertProduct(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Create resolves the image reference, creates the product remotely and
// caches the authoritative record; fallback creates it locally.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.resolveImage(ctx, product); err != nil {
		return err
	}

	dto, err := r.client.CreateProduct(ctx, remote.ProductToDTO(*product))
	if err == nil {
		saved := remote.ProductFromDTO(dto)
		if err := r.store.UpsertProduct(ctx, &saved); err != nil {
			return err
		}
		*product = saved
		return nil
	}
	if !fallbackEligible(err) {
		return err
	}
	return r.store.UpsertProduct(ctx, product)
}

// Update replaces the product remotely and caches the returned record;
// fallback writes the caller's copy locally.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	if err := r.resolveImage(ctx, product); err != nil {
		return err
	}

	dto, err := r.client.UpdateProduct(ctx, product.ID, remote.ProductToDTO(*product))
	if err == nil {
		saved := remote.ProductFromDTO(dto)
		if err := r.store.UpsertProduct(ctx, &saved); err != nil {
			return err
		}
		*product = saved
		return nil
	}
	if !fallbackEligible(err) {
		return err
	}
	return r.store.UpsertProduct(ctx, product)
}

// Delete removes the product remotely, then from the cache.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	err := r.client.DeleteProduct(ctx, id)
	if err != nil && !fallbackEligible(err) {
		return err
	}
	return r.store.DeleteProduct(ctx, id)
}

// SetBlocked toggles the blocked flag remotely and caches the result.
func (r *ProductRepository) SetBlocked(ctx context.Context, id int, blocked bool) error {
	dto, err := r.client.SetProductBlocked(ctx, id, blocked)
	if err == nil {
		saved := remote.ProductFromDTO(dto)
		return r.store.UpsertProduct(ctx, &saved)
	}
	if !fallbackEligible(err) {
		return err
	}
	local, lerr := r.store.ProductByID(ctx, id)
	if lerr != nil {
		return lerr
	}
	if local == nil {
		return nil
	}
	local.Blocked = blocked
	return r.store.UpsertProduct(ctx, local)
}

// Seed bulk-inserts products locally without touching the remote.
func (r *ProductRepository) Seed(ctx context.Context, products []models.Product) error {
	return r.store.UpsertProducts(ctx, products)
}

// Sync pulls the full remote product list and upserts it wholesale.
func (r *ProductRepository) Sync(ctx context.Context) error {
	dtos, err := r.client.Products(ctx)
	if err != nil {
		return err
	}
	products := make([]models.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, remote.ProductFromDTO(dto))
	}
	return r.store.UpsertProducts(ctx, products)
}

func (r *ProductRepository) syncByCategory(ctx context.Context, categoryID int, admin bool) error {
	dtos, err := r.client.ProductsByCategory(ctx, categoryID, admin)
	if err != nil {
		return err
	}
	products := make([]models.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, remote.ProductFromDTO(dto))
	}
	return r.store.UpsertProducts(ctx, products)
}

func (r *ProductRepository) resolveImage(ctx context.Context, product *models.Product) error {
	if r.images == nil {
		return nil
	}
	ref, err := r.images.EnsureRemoteRef(ctx, product.Image, "products")
	if err != nil {
		return err
	}
	product.Image = ref
	return nil
}
