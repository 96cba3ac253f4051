package store

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cravespot/cravespot-api/models"
)

// NewMemoryStores returns map-backed stores with the same semantics as the
// mongo driver. Used by the test suite and for local runs without a
// cluster (STORE_DRIVER=memory). Slices preserve insertion order so
// skip/limit pagination behaves like an unindexed mongo find.
func NewMemoryStores() *Stores {
	return &Stores{
		Users:    &memoryUserStore{},
		Menus:    &memoryMenuStore{},
		Reviews:  &memoryReviewStore{},
		Carts:    &memoryCartStore{},
		Payments: &memoryPaymentStore{},
	}
}

// ─────────── users ───────────

type memoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func (s *memoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryUserStore) Insert(_ context.Context, u *models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = primitive.NewObjectID()
	s.users = append(s.users, *u)
	return u.ID.Hex(), nil
}

func (s *memoryUserStore) FindAll(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *memoryUserStore) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID.Hex() == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *memoryUserStore) SetRole(_ context.Context, id, role string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID.Hex() == id {
			if s.users[i].Role == role {
				return 0, nil
			}
			s.users[i].Role = role
			return 1, nil
		}
	}
	return 0, nil
}

// ─────────── menu ───────────

type memoryMenuStore struct {
	mu    sync.RWMutex
	items []models.MenuItem
}

func (s *memoryMenuStore) Find(_ context.Context, category string, skip, limit int64) ([]models.MenuItem, error) {
	if skip < 0 {
		return nil, errors.New("store: skip must not be negative")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := []models.MenuItem{}
	for _, item := range s.items {
		if category == "" || item.Category == category {
			matched = append(matched, item)
		}
	}
	if skip >= int64(len(matched)) {
		return []models.MenuItem{}, nil
	}
	matched = matched[skip:]
	if limit > 0 && limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *memoryMenuStore) FindByID(_ context.Context, id string) (*models.MenuItem, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryMenuStore) Count(_ context.Context, category string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, item := range s.items {
		if category == "" || item.Category == category {
			n++
		}
	}
	return n, nil
}

func (s *memoryMenuStore) Insert(_ context.Context, item *models.MenuItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = primitive.NewObjectID()
	s.items = append(s.items, *item)
	return item.ID.Hex(), nil
}

func (s *memoryMenuStore) Update(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() != id {
			continue
		}
		for k, v := range fields {
			switch k {
			case "name":
				s.items[i].Name, _ = v.(string)
			case "recipe":
				s.items[i].Recipe, _ = v.(string)
			case "category":
				s.items[i].Category, _ = v.(string)
			case "image":
				s.items[i].Image, _ = v.(string)
			case "price":
				s.items[i].Price, _ = v.(float64)
			}
		}
		return 1, nil
	}
	return 0, nil
}

func (s *memoryMenuStore) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// ─────────── reviews ───────────

type memoryReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func (s *memoryReviewStore) FindAll(_ context.Context) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

// Seed adds reviews directly; only the memory driver exposes this, the
// real collection is written by a separate ingestion job.
func (s *memoryReviewStore) Seed(reviews ...models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range reviews {
		if r.ID.IsZero() {
			r.ID = primitive.NewObjectID()
		}
		s.reviews = append(s.reviews, r)
	}
}

// ─────────── cart ───────────

type memoryCartStore struct {
	mu    sync.RWMutex
	items []models.CartItem
}

func (s *memoryCartStore) Insert(_ context.Context, item *models.CartItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = primitive.NewObjectID()
	s.items = append(s.items, *item)
	return item.ID.Hex(), nil
}

func (s *memoryCartStore) FindByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.CartItem{}
	for _, item := range s.items {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *memoryCartStore) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *memoryCartStore) DeleteByIDs(_ context.Context, ids []string) (int64, error) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			return 0, ErrInvalidID
		}
		set[id] = true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	var deleted int64
	for _, item := range s.items {
		if set[item.ID.Hex()] {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return deleted, nil
}

// ─────────── payment ───────────

type memoryPaymentStore struct {
	mu       sync.RWMutex
	payments []models.Payment
}

func (s *memoryPaymentStore) Insert(_ context.Context, p *models.Payment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = primitive.NewObjectID()
	s.payments = append(s.payments, *p)
	return p.ID.Hex(), nil
}

func (s *memoryPaymentStore) FindByEmail(_ context.Context, email string) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Payment{}
	for _, p := range s.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}
