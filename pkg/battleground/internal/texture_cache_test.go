package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTexture struct {
	name      string
	destroyed int
}

func (f *fakeTexture) Destroy() error {
	f.destroyed++
	return nil
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCacheWithSize[*fakeTexture](2)
	a, b, d := &fakeTexture{name: "a"}, &fakeTexture{name: "b"}, &fakeTexture{name: "d"}

	c.Set("a", a)
	c.Set("b", b)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Same(t, a, got)

	c.Set("d", d)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, b.destroyed, "b was least recently used")
	assert.Zero(t, a.destroyed)

	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestCacheReplaceDestroysPrevious(t *testing.T) {
	c := NewCacheWithSize[*fakeTexture](2)
	old, repl := &fakeTexture{}, &fakeTexture{}

	c.Set("k", old)
	c.Set("k", repl)

	assert.Equal(t, 1, old.destroyed)
	assert.Equal(t, 1, c.Len())
	got, _ := c.Get("k")
	assert.Same(t, repl, got)
}

func TestCacheRemoveAndDestroy(t *testing.T) {
	c := NewCacheWithSize[*fakeTexture](4)
	a, b := &fakeTexture{}, &fakeTexture{}
	c.Set("a", a)
	c.Set("b", b)

	c.Remove("a")
	c.Remove("missing")
	assert.Equal(t, 1, a.destroyed)
	assert.Equal(t, 1, c.Len())

	c.Destroy()
	assert.Equal(t, 1, b.destroyed)
	assert.Zero(t, c.Len())
}
