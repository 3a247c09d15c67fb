package slot

import "github.com/rs/zerolog"

type options struct {
	log     zerolog.Logger
	onError func(*PersistenceError)
	codec   any
}

// Option configures a Slot.
type Option func(*options)

// WithLogger sets the logger used to report swallowed persistence failures.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithErrorHandler installs fn to observe persistence failures. fn is called
// synchronously, with the slot locked, and must not call back into the slot.
func WithErrorHandler(fn func(*PersistenceError)) Option {
	return func(o *options) { o.onError = fn }
}

// WithCodec replaces the default JSON codec. The codec's type parameter must
// match the slot's; a mismatched codec is ignored.
func WithCodec[T any](c Codec[T]) Option {
	return func(o *options) { o.codec = c }
}
