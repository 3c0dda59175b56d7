package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-hospital-admin/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateID is returned when a record is created twice with the same id.
var ErrDuplicateID = errors.New("record id already exists")

type recordPtr[T any] interface {
	*T
	entity.Record
}

// memoryRepository keeps records in a slice so insertion order is the
// natural iteration order.
type memoryRepository[T any, P recordPtr[T]] struct {
	mu    sync.RWMutex
	items []T
	now   func() time.Time
}

func newMemoryRepository[T any, P recordPtr[T]]() *memoryRepository[T, P] {
	return &memoryRepository[T, P]{
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *memoryRepository[T, P]) Create(ctx context.Context, item *T) error {
	P(item).Stamp(r.now())

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(P(item).GetID()) >= 0 {
		return ErrDuplicateID
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *memoryRepository[T, P]) FindAll(ctx context.Context) ([]T, error) {
	return r.filter(func(*T) bool { return true }), nil
}

func (r *memoryRepository[T, P]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	item := r.items[i]
	return &item, nil
}

// Update overwrites the stored record, inserting it if it is unknown, the
// same way gorm's Save behaves.
func (r *memoryRepository[T, P]) Update(ctx context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(P(item).GetID()); i >= 0 {
		r.items[i] = *item
		return nil
	}
	P(item).Stamp(r.now())
	r.items = append(r.items, *item)
	return nil
}

func (r *memoryRepository[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.items = append(r.items[:i:i], r.items[i+1:]...)
	}
	return nil
}

func (r *memoryRepository[T, P]) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *memoryRepository[T, P]) filter(keep func(*T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.items))
	for i := range r.items {
		if keep(&r.items[i]) {
			out = append(out, r.items[i])
		}
	}
	return out
}

// indexOf must be called with the lock held.
func (r *memoryRepository[T, P]) indexOf(id uuid.UUID) int {
	for i := range r.items {
		if P(&r.items[i]).GetID() == id {
			return i
		}
	}
	return -1
}
