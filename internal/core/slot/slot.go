// Package slot provides Slot, a value that is read from a kv.Medium once at
// construction and written back on every change.
//
// The in-memory value is the source of truth for the running process. Medium
// failures never reach the caller: a failed read or decode falls back to the
// default, and a failed write leaves the new value in memory only. Failures
// are logged and passed to the handler installed with WithErrorHandler.
package slot

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasklet/internal/core/kv"
)

// Slot holds a single persisted value of type T under a fixed key.
// Two slots must not share a key; there is no cross-instance coordination.
type Slot[T any] struct {
	medium    kv.Medium
	key       string
	codec     Codec[T]
	defaultFn func() T
	log       zerolog.Logger
	onError   func(*PersistenceError)

	mu     sync.Mutex
	value  T
	subs   []subscriber[T]
	nextID int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New creates a slot for key, loading its current value from medium.
// def is used when the entry is missing or cannot be decoded, and on Clear.
func New[T any](ctx context.Context, medium kv.Medium, key string, def T, opts ...Option) *Slot[T] {
	return NewFunc(ctx, medium, key, func() T { return def }, opts...)
}

// NewFunc is like New but produces the default lazily. def is called only
// when the stored entry is unusable, and again on every Clear.
func NewFunc[T any](ctx context.Context, medium kv.Medium, key string, def func() T, opts ...Option) *Slot[T] {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Slot[T]{
		medium:    medium,
		key:       key,
		codec:     JSONCodec[T]{},
		defaultFn: def,
		log:       o.log.With().Str("slot", key).Logger(),
		onError:   o.onError,
	}

	if o.codec != nil {
		if c, ok := o.codec.(Codec[T]); ok {
			s.codec = c
		} else {
			s.log.Warn().Msg("codec does not match slot type, using json")
		}
	}

	s.value = s.load(ctx)
	return s
}

// Key returns the medium key the slot reads and writes.
func (s *Slot[T]) Key() string {
	return s.key
}

// Value returns the current value. Slices, maps and pointers are returned
// as held, not copied: callers must treat them as read-only and change the
// value only through Set or Update, or the change is never written.
func (s *Slot[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value and writes it through to the medium.
func (s *Slot[T]) Set(ctx context.Context, v T) {
	s.Update(ctx, func(T) T { return v })
}

// Update replaces the value with fn(current) and writes it through to the
// medium. fn runs with the slot locked and must not call back into the slot.
func (s *Slot[T]) Update(ctx context.Context, fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	v := s.value
	s.write(ctx, v)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, v)
}

// Clear removes the medium entry and restores the default value, which is
// then written back like any other Set.
func (s *Slot[T]) Clear(ctx context.Context) {
	s.mu.Lock()
	if err := s.medium.Delete(ctx, s.key); err != nil && !kv.IsNotFound(err) {
		s.fail(OpDelete, err)
	}
	s.value = s.defaultFn()
	v := s.value
	s.write(ctx, v)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, v)
}

// Subscribe registers fn to be called with the new value after every Set,
// Update and Clear. Subscribers run synchronously in registration order.
// The returned function removes the subscription.
func (s *Slot[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// load reads and decodes the stored value, falling back to the default.
func (s *Slot[T]) load(ctx context.Context) T {
	raw, err := s.medium.Get(ctx, s.key)
	if err != nil {
		if kv.IsNotFound(err) {
			s.log.Debug().Msg("no stored value, using default")
		} else {
			s.fail(OpRead, err)
		}
		return s.defaultFn()
	}

	v, err := s.codec.Decode(raw)
	if err != nil {
		s.fail(OpDecode, err)
		return s.defaultFn()
	}
	return v
}

// write encodes v and stores it. Must be called with s.mu held.
func (s *Slot[T]) write(ctx context.Context, v T) {
	raw, err := s.codec.Encode(v)
	if err != nil {
		s.fail(OpEncode, err)
		return
	}

	if err := s.medium.Set(ctx, s.key, raw); err != nil {
		s.fail(OpWrite, err)
	}
}

func (s *Slot[T]) fail(op Op, err error) {
	perr := &PersistenceError{Op: op, Key: s.key, Err: err}
	s.log.Warn().Err(err).Str("op", string(op)).Msg("slot persistence failed")
	if s.onError != nil {
		s.onError(perr)
	}
}

func (s *Slot[T]) subscribersLocked() []subscriber[T] {
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	return subs
}

func notify[T any](subs []subscriber[T], v T) {
	for _, sub := range subs {
		sub.fn(v)
	}
}
