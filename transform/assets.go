package transform

import (
	"context"
	"fmt"

	"storycaster/cms"
)

// AssetResolver is the collaborator boundary for image resolution. The
// engine awaits each call in place, one node at a time; callers impose
// their own deadlines through ctx.
type AssetResolver interface {
	// Resolve maps an image reference to a served URL.
	Resolve(ctx context.Context, imageRef, name string) (string, error)
}

// FallbackURL is the deterministic URL used when resolution fails, so a
// broken asset pipeline degrades to a stable placeholder instead of an
// error.
func FallbackURL(imageRef, name string) string {
	slug := cms.Slugify(name)
	if slug == "" {
		slug = cms.Slugify(imageRef)
	}
	if slug == "" {
		slug = "asset"
	}

	return fmt.Sprintf("https://assets.invalid/placeholder/%s", slug)
}

// ResolveAsset resolves through the given resolver, substituting the
// deterministic fallback URL on any failure. It never returns an error to
// the surrounding walk.
func ResolveAsset(ctx context.Context, r AssetResolver, imageRef, name string) string {
	if r == nil {
		return FallbackURL(imageRef, name)
	}

	url, err := r.Resolve(ctx, imageRef, name)
	if err != nil || url == "" {
		return FallbackURL(imageRef, name)
	}

	return url
}

// FallbackOnlyResolver always yields the deterministic fallback URL. It is
// the default when no real asset pipeline is wired in.
type FallbackOnlyResolver struct{}

// Resolve implements AssetResolver.
func (FallbackOnlyResolver) Resolve(_ context.Context, imageRef, name string) (string, error) {
	return FallbackURL(imageRef, name), nil
}
