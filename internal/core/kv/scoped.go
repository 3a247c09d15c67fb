package kv

import "context"

// ScopedMedium prefixes every key with "namespace." before delegating.
// Closing a ScopedMedium does not close the underlying medium.
type ScopedMedium struct {
	store  Medium
	prefix string
}

var _ Medium = (*ScopedMedium)(nil)

// Scoped returns a Medium that prefixes all keys with "namespace.".
func Scoped(store Medium, namespace string) *ScopedMedium {
	return &ScopedMedium{
		store:  store,
		prefix: namespace + ".",
	}
}

// Key returns the fully qualified key as stored in the underlying medium.
func (s *ScopedMedium) Key(key string) string {
	return s.prefix + key
}

func (s *ScopedMedium) Get(ctx context.Context, key string) (string, error) {
	return s.store.Get(ctx, s.prefix+key)
}

func (s *ScopedMedium) Set(ctx context.Context, key string, value string) error {
	return s.store.Set(ctx, s.prefix+key, value)
}

func (s *ScopedMedium) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.prefix+key)
}

// Close is a no-op; the owner of the underlying medium closes it.
func (s *ScopedMedium) Close() error {
	return nil
}
