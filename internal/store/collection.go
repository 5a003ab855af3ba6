// Package store holds the in-memory entity collections backing every resource.
//
// A Collection keeps records in insertion order and guards them with a single
// RWMutex, so each create/update/delete is atomic with respect to other requests.
// Lookups are linear scans; the collections are demo-sized.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateID is returned by Insert when the record id is already taken.
var ErrDuplicateID = errors.New("store: duplicate id")

// Record is the identity and audit part shared by every entity.
// Entities embed it so that id and timestamps serialize at the top level.
type Record struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Meta gives the store access to the embedded record.
func (r *Record) Meta() *Record { return r }

// Entity is implemented by any pointer to a struct embedding Record.
type Entity interface {
	Meta() *Record
}

// Options configures the time source and id generator of a collection.
// Zero values fall back to time.Now and uuid.NewString.
type Options struct {
	Now   func() time.Time
	NewID func() string
}

// Collection is an ordered, mutex-guarded set of records of type E.
type Collection[E any, P interface {
	*E
	Entity
}] struct {
	mu      sync.RWMutex
	items   []E
	version uint64

	now   func() time.Time
	newID func() string
}

// NewCollection creates an empty collection.
func NewCollection[E any, P interface {
	*E
	Entity
}](opts Options) *Collection[E, P] {
	c := &Collection[E, P]{
		now:   opts.Now,
		newID: opts.NewID,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	return c
}

// FindAll returns a copy of every record in insertion order.
func (c *Collection[E, P]) FindAll() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

// FindByID returns the record with the given id.
func (c *Collection[E, P]) FindByID(id string) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero E
		return zero, false
	}
	return c.items[i], true
}

// FindBy returns every record accepted by pred, in insertion order.
func (c *Collection[E, P]) FindBy(pred func(E) bool) []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]E, 0)
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Create assigns a fresh id, stamps createdAt = updatedAt = now and appends e.
func (c *Collection[E, P]) Create(e E) E {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now().UTC()
	rec := P(&e).Meta()
	rec.ID = c.newID()
	for c.indexOf(rec.ID) >= 0 {
		rec.ID = c.newID()
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	c.items = append(c.items, e)
	c.version++
	return e
}

// Insert appends e keeping its id when set. Missing timestamps are stamped with now.
// It is the seeding path; request handlers go through Create.
func (c *Collection[E, P]) Insert(e E) (E, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := P(&e).Meta()
	if rec.ID == "" {
		rec.ID = c.newID()
	}
	if c.indexOf(rec.ID) >= 0 {
		var zero E
		return zero, ErrDuplicateID
	}

	now := c.now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.Before(rec.CreatedAt) {
		rec.UpdatedAt = rec.CreatedAt
	}

	c.items = append(c.items, e)
	c.version++
	return e, nil
}

// Update applies patch to a copy of the stored record and writes it back.
// id and createdAt survive whatever patch does; updatedAt always moves forward.
// The second result is false when no record has the id.
func (c *Collection[E, P]) Update(id string, patch func(*E)) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero E
		return zero, false
	}

	prev := *P(&c.items[i]).Meta()
	next := c.items[i]
	patch(&next)

	rec := P(&next).Meta()
	rec.ID = prev.ID
	rec.CreatedAt = prev.CreatedAt
	rec.UpdatedAt = c.advance(prev.UpdatedAt)

	c.items[i] = next
	c.version++
	return next, true
}

// Delete removes the record and reports whether one was removed.
func (c *Collection[E, P]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.version++
	return true
}

// Len returns the number of records.
func (c *Collection[E, P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Version increases on every successful mutation.
func (c *Collection[E, P]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// caller must hold mu
func (c *Collection[E, P]) indexOf(id string) int {
	for i := range c.items {
		if P(&c.items[i]).Meta().ID == id {
			return i
		}
	}
	return -1
}

// advance returns now, or prev+1ms when the clock has not moved past prev.
func (c *Collection[E, P]) advance(prev time.Time) time.Time {
	now := c.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	return now
}
