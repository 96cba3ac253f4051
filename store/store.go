// Package store is the persistence layer. Each collection gets a small
// interface so handlers stay decoupled from the driver; implementations
// exist for MongoDB and for an in-memory map (tests, local dev without a
// cluster). IDs cross the boundary as hex strings.
package store

import (
	"context"
	"errors"

	"github.com/cravespot/cravespot-api/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("store: not found")
	// ErrInvalidID is returned when an id is not a valid object id.
	ErrInvalidID = errors.New("store: invalid id")
)

// UserStore persists user records.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) (string, error)
	FindAll(ctx context.Context) ([]models.User, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	SetRole(ctx context.Context, id, role string) (int64, error)
}

// MenuStore persists catalog entries.
type MenuStore interface {
	// Find returns items filtered by category (empty = all), skipping
	// skip documents and capping at limit (0 = no cap).
	Find(ctx context.Context, category string, skip, limit int64) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id string) (*models.MenuItem, error)
	Count(ctx context.Context, category string) (int64, error)
	Insert(ctx context.Context, item *models.MenuItem) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// ReviewStore persists customer reviews.
type ReviewStore interface {
	FindAll(ctx context.Context) ([]models.Review, error)
}

// CartStore persists cart items.
type CartStore interface {
	Insert(ctx context.Context, item *models.CartItem) (string, error)
	FindByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	// DeleteByIDs removes every item whose id is in the set and returns
	// the deleted count. The predicate is idempotent: ids already gone
	// simply do not count.
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

// PaymentStore persists payment records. Append-only: there is no update
// or delete.
type PaymentStore interface {
	Insert(ctx context.Context, p *models.Payment) (string, error)
	FindByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// Stores bundles the per-collection stores for injection into routes.
type Stores struct {
	Users    UserStore
	Menus    MenuStore
	Reviews  ReviewStore
	Carts    CartStore
	Payments PaymentStore

	ping func(context.Context) error
}

// Ping verifies the backing store is reachable. The memory driver always
// reports healthy.
func (s *Stores) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}
