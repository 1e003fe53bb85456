package request

import "github.com/rs/zerolog"

// Option configures a Request.
type Option func(*settings)

// settings is shared by a Request and every request derived from it.
type settings struct {
	logger     zerolog.Logger
	codec      Codec
	defaultKey DefaultKeyFunc
	fallbacks  int
}

func newSettings(opts []Option) *settings {
	s := &settings{
		logger:     zerolog.Nop(),
		codec:      URLCodec{},
		defaultKey: DefaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLogger sets the logger that reports encode and decode fallbacks.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithCodec replaces the percent codec.
func WithCodec(codec Codec) Option {
	return func(s *settings) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// WithDefaultKeys replaces the registry used for values stored without a key.
func WithDefaultKeys(fn DefaultKeyFunc) Option {
	return func(s *settings) {
		if fn != nil {
			s.defaultKey = fn
		}
	}
}
