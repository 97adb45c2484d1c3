// Package store is the local cache: row-level access to the persisted
// tables, multi-statement transactions, and change notifications for
// observable queries. It is constructed explicitly around an injected
// *gorm.DB; there is no ambient global handle.
package store

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/delsur-bakery/delsur-store/models"
)

// Table names a watched table.
type Table string

const (
	TableCategories Table = "categories"
	TableProducts   Table = "products"
	TableCartItems  Table = "cart_items"
	TableOrders     Table = "orders"
	TableUsers      Table = "users"
)

// Store wraps the cache database. Inside a Transaction the Store is a
// clone bound to the transaction handle; change notifications are held
// back until the transaction commits.
type Store struct {
	db      *gorm.DB
	hub     *hub
	pending map[Table]struct{}
}

// New creates a Store over an open database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db, hub: newHub()}
}

// AutoMigrate creates or updates the cache tables.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderLine{},
		&models.User{},
	)
}

// Transaction runs fn atomically. Partial writes are never observable:
// watchers are notified only after a successful commit, and a returned
// error rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	pending := make(map[Table]struct{})
	err := s.db.WithContext(ctx).Transaction(func(txdb *gorm.DB) error {
		tx := &Store{db: txdb, hub: s.hub, pending: pending}
		return fn(tx)
	})
	if err != nil {
		return err
	}
	for table := range pending {
		s.hub.notify(table)
	}
	return nil
}

// Watch returns a channel that receives a (coalesced) signal whenever
// any of the given tables is written. The channel closes when ctx is
// done.
func (s *Store) Watch(ctx context.Context, tables ...Table) <-chan struct{} {
	ch := make(chan struct{}, 1)
	sub := s.hub.subscribe(tables, ch)
	go func() {
		<-ctx.Done()
		s.hub.unsubscribe(sub)
		close(ch)
	}()
	return ch
}

// changed records a write for notification. Inside a transaction the
// signal is deferred until commit.
func (s *Store) changed(table Table) {
	if s.pending != nil {
		s.pending[table] = struct{}{}
		return
	}
	s.hub.notify(table)
}

func (s *Store) withCtx(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

type subscription struct {
	tables map[Table]struct{}
	ch     chan struct{}
}

type hub struct {
	mu   sync.Mutex
	subs map[*subscription]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[*subscription]struct{})}
}

func (h *hub) subscribe(tables []Table, ch chan struct{}) *subscription {
	set := make(map[Table]struct{}, len(tables))
	for _, t := range tables {
		set[t] = struct{}{}
	}
	sub := &subscription{tables: set, ch: ch}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *hub) unsubscribe(sub *subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// notify signals every subscriber watching the table. The send is
// non-blocking: a pending signal already covers the change.
func (h *hub) notify(table Table) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		if _, ok := sub.tables[table]; !ok {
			continue
		}
		select {
		case sub.ch <- struct{}{}:
		default:
		}
	}
}
