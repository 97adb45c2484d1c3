package repositories

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delsur-bakery/delsur-store/models"
	"github.com/delsur-bakery/delsur-store/remote"
)

func userJSON(id int, email string, blocked bool) gin.H {
	return gin.H{
		"id": id, "national_id": "12.345.678-9", "name": "Ana", "surname": "Rojas",
		"email": email, "role": "CUSTOMER", "blocked": blocked,
	}
}

func loginBackend(t *testing.T, blocked bool) *remote.Client {
	return newBackend(t, func(router *gin.Engine) {
		router.POST("/auth/login", func(c *gin.Context) {
			var req remote.LoginRequest
			require.NoError(t, c.ShouldBindJSON(&req))
			c.JSON(http.StatusOK, gin.H{
				"user":    userJSON(7, req.Email, blocked),
				"message": "ok",
			})
		})
	})
}

func TestLoginSuccessCachesUserWithHash(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s, loginBackend(t, false), fakeHasher{})
	ctx := context.Background()

	user, err := repo.Login(ctx, "ana@delsur.cl", "pw")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 7, user.ID)

	cached, err := s.UserByEmail(ctx, "ana@delsur.cl")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "hashed:pw", cached.PasswordHash, "plaintext must never be stored")
}

func TestLoginBlockedAccountRejected(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s, loginBackend(t, true), fakeHasher{})

	user, err := repo.Login(context.Background(), "ana@delsur.cl", "pw")
	assert.ErrorIs(t, err, ErrAccountBlocked)
	assert.Nil(t, user)
}

func TestLoginBadCredentialsReadAsNoMatch(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"empty message", ""},
		{"credentials message", "Invalid credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			repo := NewUserRepository(s, statusClient(t, http.StatusBadRequest, tt.message), fakeHasher{})

			user, err := repo.Login(context.Background(), "ana@delsur.cl", "wrong")
			assert.NoError(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestLoginBlockedMessageMapsToSentinel(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s, statusClient(t, http.StatusBadRequest, "Account is blocked"), fakeHasher{})

	user, err := repo.Login(context.Background(), "ana@delsur.cl", "pw")
	assert.ErrorIs(t, err, ErrAccountBlocked)
	assert.Nil(t, user)
}

func TestLoginServerErrorFallsBackToOfflineVerify(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s, statusClient(t, http.StatusInternalServerError, ""), fakeHasher{})
	ctx := context.Background()

	require.NoError(t, s.UpsertUser(ctx, &models.User{
		ID: 7, NationalID: "1-9", Name: "Ana", Surname: "Rojas",
		Email: "ana@delsur.cl", Role: models.RoleCustomer, PasswordHash: "hashed:pw",
	}))

	user, err := repo.Login(ctx, "ana@delsur.cl", "pw")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 7, user.ID)
}

func TestLoginOfflineWrongPasswordSurfacesRemoteError(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s, downClient(t), fakeHasher{})
	ctx := context.Background()

	require.NoError(t, s.UpsertUser(ctx, &models.User{
		ID: 7, NationalID: "1-9", Name: "Ana", Surname: "Rojas",
		Email: "ana@delsur.cl", Role: models.RoleCustomer, PasswordHash: "hashed:pw",
	}))

	user, err := repo.Login(ctx, "ana@delsur.cl", "wrong")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestLoginOfflineBlockedAccountRejected(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s, downClient(t), fakeHasher{})
	ctx := context.Background()

	require.NoError(t, s.UpsertUser(ctx, &models.User{
		ID: 7, NationalID: "1-9", Name: "Ana", Surname: "Rojas",
		Email: "ana@delsur.cl", Role: models.RoleCustomer, PasswordHash: "hashed:pw", Blocked: true,
	}))

	user, err := repo.Login(ctx, "ana@delsur.cl", "pw")
	assert.ErrorIs(t, err, ErrAccountBlocked)
	assert.Nil(t, user)
}

func TestRegisterRejectsLocalDuplicates(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s, downClient(t), fakeHasher{})
	ctx := context.Background()

	require.NoError(t, s.UpsertUser(ctx, &models.User{
		ID: 7, NationalID: "12.345.678-9", Name: "Ana", Surname: "Rojas",
		Email: "ana@delsur.cl", Role: models.RoleCustomer,
	}))

	err := repo.Register(ctx, models.User{NationalID: "12.345.678-9", Email: "otra@delsur.cl"}, "pw")
	assert.ErrorIs(t, err, ErrNationalIDTaken)

	err = repo.Register(ctx, models.User{NationalID: "9.876.543-2", Email: "ana@delsur.cl"}, "pw")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterCachesReturnedUserWithHash(t *testing.T) {
	s := newTestStore(t)
	client := newBackend(t, func(router *gin.Engine) {
		router.POST("/auth/register", func(c *gin.Context) {
			var payload remote.UserPayload
			require.NoError(t, c.ShouldBindJSON(&payload))
			require.NotNil(t, payload.Password)
			assert.Equal(t, "pw", *payload.Password)
			c.JSON(http.StatusCreated, userJSON(7, payload.Email, false))
		})
	})
	repo := NewUserRepository(s, client, fakeHasher{})
	ctx := context.Background()

	err := repo.Register(ctx, models.User{NationalID: "12.345.678-9", Email: "ana@delsur.cl"}, "pw")
	require.NoError(t, err)

	cached, err := s.UserByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "hashed:pw", cached.PasswordHash)
}

func TestSyncPreservesPasswordHashes(t *testing.T) {
	s := newTestStore(t)
	client := newBackend(t, func(router *gin.Engine) {
		router.GET("/users", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{
				userJSON(7, "ana@delsur.cl", false),
				userJSON(8, "ben@delsur.cl", false),
			})
		})
	})
	repo := NewUserRepository(s, client, fakeHasher{})
	ctx := context.Background()

	require.NoError(t, s.UpsertUser(ctx, &models.User{
		ID: 7, NationalID: "1-9", Name: "Old", Surname: "Name",
		Email: "ana@delsur.cl", Role: models.RoleCustomer, PasswordHash: "hashed:pw",
	}))

	require.NoError(t, repo.Sync(ctx))

	ana, err := s.UserByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "hashed:pw", ana.PasswordHash, "pull must not wipe the stored hash")
	assert.Equal(t, "Ana", ana.Name, "pull must refresh profile fields")

	ben, err := s.UserByID(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, ben.PasswordHash, "new row has no hash until first login")
}

func TestGetByIDFallsBackToCache(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s, downClient(t), fakeHasher{})
	ctx := context.Background()

	require.NoError(t, s.UpsertUser(ctx, &models.User{
		ID: 7, NationalID: "1-9", Name: "Ana", Surname: "Rojas",
		Email: "ana@delsur.cl", Role: models.RoleCustomer,
	}))

	user, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Ana", user.Name)

	missing, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateFallbackKeepsStoredHash(t *testing.T) {
	s := newTestStore(t)
	repo := NewUserRepository(s, downClient(t), fakeHasher{})
	ctx := context.Background()

	require.NoError(t, s.UpsertUser(ctx, &models.User{
		ID: 7, NationalID: "1-9", Name: "Ana", Surname: "Rojas",
		Email: "ana@delsur.cl", Role: models.RoleCustomer, PasswordHash: "hashed:pw",
	}))

	err := repo.Update(ctx, models.User{
		ID: 7, NationalID: "1-9", Name: "Ana María", Surname: "Rojas",
		Email: "ana@delsur.cl", Role: models.RoleCustomer,
	})
	require.NoError(t, err)

	cached, err := s.UserByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", cached.Name)
	assert.Equal(t, "hashed:pw", cached.PasswordHash)
}

func TestSetBlockedCachesResult(t *testing.T) {
	s := newTestStore(t)
	client := newBackend(t, func(router *gin.Engine) {
		router.PATCH("/users/7/blocked", func(c *gin.Context) {
			assert.Equal(t, "true", c.Query("blocked"))
			c.JSON(http.StatusOK, userJSON(7, "ana@delsur.cl", true))
		})
	})
	repo := NewUserRepository(s, client, fakeHasher{})
	ctx := context.Background()

	require.NoError(t, repo.SetBlocked(ctx, 7, true))

	cached, err := s.UserByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.True(t, cached.Blocked)
}
