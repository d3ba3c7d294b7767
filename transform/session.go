// Package transform holds the state and boundary types shared by the
// forward (IR to CMS) and reverse (CMS to IR) transformers: the
// per-invocation session, the result cache, warning/error taxonomy, and the
// asset-resolution boundary.
package transform

import (
	"github.com/rs/zerolog"

	"storycaster/design"
	"storycaster/registry"
	"storycaster/validate"
)

// Session carries everything one transformation invocation needs: logger,
// grammar, validator, design mapper, result cache and asset resolver.
// Nothing in the engine holds package-level mutable state; create one
// session per invocation context. A Session is not safe for concurrent use.
type Session struct {
	Logger    zerolog.Logger
	Registry  *registry.Registry
	Validator *validate.Validator
	Design    *design.Mapper
	Cache     *Cache
	Assets    AssetResolver
}

// Options configures a Session. The zero value is usable: no-op logger,
// builtin grammar, default cache size, fallback-only asset resolution.
type Options struct {
	Logger    *zerolog.Logger
	Registry  *registry.Registry
	CacheSize int
	Assets    AssetResolver
}

// DefaultCacheSize bounds the forward-transform result cache.
const DefaultCacheSize = 128

// NewSession builds a session.
func NewSession(opts *Options) *Session {
	if opts == nil {
		opts = &Options{}
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	reg := opts.Registry
	if reg == nil {
		reg = registry.New()
	}

	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	assets := opts.Assets
	if assets == nil {
		assets = FallbackOnlyResolver{}
	}

	return &Session{
		Logger:    logger,
		Registry:  reg,
		Validator: validate.New(&validate.Options{Registry: reg, Logger: &logger}),
		Design:    design.New(&logger),
		Cache:     NewCache(size),
		Assets:    assets,
	}
}
