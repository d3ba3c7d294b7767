package transform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycaster/ir"
)

func TestSessionDefaults(t *testing.T) {
	s := NewSession(nil)

	require.NotNil(t, s.Registry)
	require.NotNil(t, s.Validator)
	require.NotNil(t, s.Design)
	require.NotNil(t, s.Cache)
	require.NotNil(t, s.Assets)
}

func TestCacheKeyFullContent(t *testing.T) {
	long := make([]*ir.Node, 0, 40)
	for i := 0; i < 40; i++ {
		long = append(long, &ir.Node{Kind: ir.KindText, Name: "shared-prefix-node"})
	}

	a := &ir.Layout{Version: "1.0", Name: "a", Content: long}

	b := a.Clone()
	b.Content[39].Name = "tail-differs"

	// The two layouts agree on far more than 100 serialized characters;
	// their keys must still differ.
	assert.NotEqual(t, CacheKey(a, ""), CacheKey(b, ""))
	assert.Equal(t, CacheKey(a, ""), CacheKey(a.Clone(), ""))
	assert.NotEqual(t, CacheKey(a, "opts:v1"), CacheKey(a, "opts:v2"))
}

func TestCachePutGetClear(t *testing.T) {
	c := NewCache(2)

	c.Put("k1", "v1")
	c.Put("k2", "v2")

	got, ok := c.Get("k1")
	require.True(t, ok)
	assert.Equal(t, "v1", got)

	c.Put("k3", "v3") // evicts the least recently used
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
	_, ok = c.Get("k2")
	assert.False(t, ok)
}

func TestCombineErrors(t *testing.T) {
	assert.NoError(t, CombineErrors(nil))

	err := CombineErrors([]Error{
		{Code: ErrCodeParsing, Node: "hero", Message: "bad props"},
		{Code: ErrCodeValidation, Message: "invalid output"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PARSING_ERROR [hero]")
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Error{Code: ErrCodeParsing, Message: "m", Err: cause}
	assert.ErrorIs(t, err, cause)
}

type failingResolver struct{}

func (failingResolver) Resolve(context.Context, string, string) (string, error) {
	return "", errors.New("lookup failed")
}

func TestResolveAssetFallsBack(t *testing.T) {
	url := ResolveAsset(context.Background(), failingResolver{}, "img-123", "Team Photo")
	assert.Equal(t, "https://assets.invalid/placeholder/team-photo", url)

	// Deterministic: same inputs, same fallback.
	assert.Equal(t, url, ResolveAsset(context.Background(), failingResolver{}, "img-123", "Team Photo"))

	assert.Equal(t, "https://assets.invalid/placeholder/img-123",
		ResolveAsset(context.Background(), nil, "img-123", ""))

	assert.Equal(t, "https://assets.invalid/placeholder/asset",
		ResolveAsset(context.Background(), nil, "", ""))
}

func TestWarningString(t *testing.T) {
	w := Warning{Type: WarnUnsupportedComponent, Component: "sb-unknown", Message: "no transform", Impact: ImpactMedium}
	s := w.String()
	assert.Contains(t, s, "UNSUPPORTED_COMPONENT")
	assert.Contains(t, s, "medium impact")
	assert.Contains(t, s, "sb-unknown")
}
