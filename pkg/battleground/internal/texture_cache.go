package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 8

// destroyer is the part of *sdl.Texture the cache needs.
type destroyer interface {
	Destroy() error
}

// Cache holds textures by key and destroys the least recently used one
// when full.
type Cache[T destroyer] struct {
	textures map[string]T
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

// TextureCache caches rendered text and sprite textures.
type TextureCache = Cache[*sdl.Texture]

func NewTextureCache() *TextureCache {
	return NewCacheWithSize[*sdl.Texture](defaultMaxCacheSize)
}

func NewCacheWithSize[T destroyer](maxSize int) *Cache[T] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Cache[T]{
		textures: make(map[string]T),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *Cache[T]) Get(key string) (T, bool) {
	texture, exists := c.textures[key]
	if exists {
		c.moveToEnd(key)
	}
	return texture, exists
}

// Set stores texture under key. A texture previously stored under the same
// key is destroyed.
func (c *Cache[T]) Set(key string, texture T) {
	if old, exists := c.textures[key]; exists {
		old.Destroy()
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Remove destroys and forgets the texture stored under key.
func (c *Cache[T]) Remove(key string) {
	texture, exists := c.textures[key]
	if !exists {
		return
	}
	texture.Destroy()
	delete(c.textures, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func (c *Cache[T]) Len() int {
	return len(c.order)
}

func (c *Cache[T]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *Cache[T]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *Cache[T]) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]T)
	c.order = c.order[:0]
}
