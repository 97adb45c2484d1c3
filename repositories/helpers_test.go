package repositories

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/delsur-bakery/delsur-store/remote"
	"github.com/delsur-bakery/delsur-store/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s := store.New(db)
	require.NoError(t, s.AutoMigrate())
	return s
}

// newBackend spins up a stub storefront backend from gin routes and
// returns a client pointed at it.
func newBackend(t *testing.T, register func(router *gin.Engine)) *remote.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	register(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return remote.NewClient(server.URL)
}

// downClient simulates a backend that is unreachable: every request
// fails at the transport level.
func downClient(t *testing.T) *remote.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	return remote.NewClient(server.URL)
}

// statusClient simulates a backend that answers every request with the
// given status code.
func statusClient(t *testing.T, status int, message string) *remote.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if message != "" {
			fmt.Fprintf(w, `{"message":%q}`, message)
		}
	}))
	t.Cleanup(server.Close)
	return remote.NewClient(server.URL)
}

// fakeHasher is a deterministic PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) bool {
	return hash != "" && hash == "hashed:"+password
}
