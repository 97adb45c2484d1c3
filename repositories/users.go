package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/delsur-bakery/delsur-store/models"
	"github.com/delsur-bakery/delsur-store/remote"
	"github.com/delsur-bakery/delsur-store/store"
	"github.com/delsur-bakery/delsur-store/utils"
)

// UserRepository syncs accounts and handles authentication. Plaintext
// passwords exist only in transit: the cache stores a bcrypt hash,
// written on login/registration so that offline login keeps working.
type UserRepository struct {
	store  *store.Store
	client *remote.Client
	hasher utils.PasswordHasher
}

// NewUserRepository wires a user sync engine.
func NewUserRepository(s *store.Store, client *remote.Client, hasher utils.PasswordHasher) *UserRepository {
	return &UserRepository{store: s, client: client, hasher: hasher}
}

// Login authenticates against the backend. A nil user with a nil error
// means "no match" (bad credentials) so the caller can show a generic
// invalid-login message. Blocked accounts surface ErrAccountBlocked on
// both the remote and the offline path. On 5xx or connectivity
// failures the stored hash is checked instead.
func (r *UserRepository) Login(ctx context.Context, email, password string) (*models.User, error) {
	response, err := r.client.Login(ctx, remote.LoginRequest{Email: email, Password: password})
	if err == nil {
		hash, herr := r.hasher.Hash(password)
		if herr != nil {
			return nil, herr
		}
		user := remote.UserFromDTO(response.User, hash)
		if serr := r.store.UpsertUser(ctx, &user); serr != nil {
			return nil, serr
		}
		if user.Blocked {
			return nil, ErrAccountBlocked
		}
		return &user, nil
	}

	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 400:
			message := strings.TrimSpace(apiErr.Message)
			lower := strings.ToLower(message)
			switch {
			case message == "" || strings.Contains(lower, "credential"):
				return nil, nil
			case strings.Contains(lower, "blocked"):
				return nil, ErrAccountBlocked
			default:
				return nil, fmt.Errorf("login rejected: %s", message)
			}
		case apiErr.StatusCode >= 500:
			if user, ferr := r.offlineLogin(ctx, email, password); ferr != nil || user != nil {
				return user, ferr
			}
			return nil, err
		default:
			return nil, err
		}
	}

	// Connectivity failure
	if user, ferr := r.offlineLogin(ctx, email, password); ferr != nil || user != nil {
		return user, ferr
	}
	return nil, err
}

// Register creates an account. National id and email collisions are
// rejected against the cache before any remote call; remote errors
// propagate untouched since registration must be authoritative.
func (r *UserRepository) Register(ctx context.Context, user models.User, password string) error {
	existing, err := r.store.UserByNationalID(ctx, user.NationalID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrNationalIDTaken
	}
	existing, err = r.store.UserByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	dto, err := r.client.Register(ctx, remote.UserToPayload(user, &password))
	if err != nil {
		return err
	}
	hash, err := r.hasher.Hash(password)
	if err != nil {
		return err
	}
	saved := remote.UserFromDTO(dto, hash)
	return r.store.UpsertUser(ctx, &saved)
}

// Update replaces a user profile remotely and caches the returned
// record, carrying the stored password hash over (the wire never has
// one). Fallback writes the caller's copy locally with the same hash.
func (r *UserRepository) Update(ctx context.Context, user models.User) error {
	hash, err := r.storedHash(ctx, user.ID)
	if err != nil {
		return err
	}

	dto, rerr := r.client.UpdateUser(ctx, user.ID, remote.UserToPayload(user, nil))
	if rerr == nil {
		saved := remote.UserFromDTO(dto, hash)
		return r.store.UpsertUser(ctx, &saved)
	}
	if !fallbackEligible(rerr) {
		return rerr
	}
	user.PasswordHash = hash
	return r.store.UpsertUser(ctx, &user)
}

// GetByEmail reads the cache; a miss triggers one users sync and a
// retry.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.store.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	if err := r.Sync(ctx); err != nil {
		log.Printf("users pull failed, keeping cached rows: %v", err)
	}
	return r.store.UserByEmail(ctx, email)
}

// GetByID fetches the remote record and caches it (hash preserved);
// any remote failure falls back to the cached row.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	dto, err := r.client.User(ctx, id)
	if err != nil {
		return r.store.UserByID(ctx, id)
	}
	hash, err := r.storedHash(ctx, id)
	if err != nil {
		return nil, err
	}
	user := remote.UserFromDTO(dto, hash)
	if err := r.store.UpsertUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Observe emits every cached user and re-emits on writes, pulling the
// remote accounts in the background.
func (r *UserRepository) Observe(ctx context.Context) <-chan []models.User {
	pull := func(ctx context.Context) {
		if err := r.Sync(ctx); err != nil {
			log.Printf("users pull failed, keeping cached rows: %v", err)
		}
	}
	query := func(ctx context.Context) ([]models.User, error) {
		return r.store.Users(ctx)
	}
	return observe(ctx, r.store, store.TableUsers, pull, query)
}

// SetRole changes a user's role remotely and caches the result.
func (r *UserRepository) SetRole(ctx context.Context, id int, role models.UserRole) error {
	dto, err := r.client.SetUserRole(ctx, id, string(role))
	if err != nil {
		return err
	}
	return r.cacheUser(ctx, dto)
}

// SetBlocked toggles a user's blocked flag remotely and caches the
// result.
func (r *UserRepository) SetBlocked(ctx context.Context, id int, blocked bool) error {
	dto, err := r.client.SetUserBlocked(ctx, id, blocked)
	if err != nil {
		return err
	}
	return r.cacheUser(ctx, dto)
}

// Delete removes an account remotely, then from the cache.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.DeleteUser(ctx, id); err != nil {
		return err
	}
	return r.store.DeleteUser(ctx, id)
}

// offlineLogin verifies credentials against the cached hash. Blocked
// accounts are rejected the same way the remote path rejects them.
func (r *UserRepository) offlineLogin(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.store.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if user.Blocked {
		return nil, ErrAccountBlocked
	}
	if r.hasher.Verify(password, user.PasswordHash) {
		return user, nil
	}
	return nil, nil
}

// Sync pulls every remote account and upserts them, carrying each
// user's previously cached password hash over by id so offline login
// survives the sync.
func (r *UserRepository) Sync(ctx context.Context) error {
	dtos, err := r.client.Users(ctx)
	if err != nil {
		return err
	}
	if len(dtos) == 0 {
		return nil
	}
	hashes, err := r.store.PasswordHashes(ctx)
	if err != nil {
		return err
	}
	users := make([]models.User, 0, len(dtos))
	for _, dto := range dtos {
		users = append(users, remote.UserFromDTO(dto, hashes[dto.ID]))
	}
	return r.store.UpsertUsers(ctx, users)
}

func (r *UserRepository) cacheUser(ctx context.Context, dto remote.UserDTO) error {
	hash, err := r.storedHash(ctx, dto.ID)
	if err != nil {
		return err
	}
	user := remote.UserFromDTO(dto, hash)
	return r.store.UpsertUser(ctx, &user)
}

func (r *UserRepository) storedHash(ctx context.Context, id int) (string, error) {
	existing, err := r.store.UserByID(ctx, id)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", nil
	}
	return existing.PasswordHash, nil
}
