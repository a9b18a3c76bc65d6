package template

import (
	"sync"
)

// Cache keeps parsed templates by their source text.
type Cache struct {
	lock      sync.Mutex
	templates map[string]*Template
}

func NewCache() *Cache {
	return &Cache{templates: map[string]*Template{}}
}

// Get returns the parsed template for a text.
// Parse errors are not cached.
func (c *Cache) Get(text string) (*Template, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if t := c.templates[text]; t != nil {
		return t, nil
	}
	t, err := Parse(text)
	if err != nil {
		return nil, err
	}
	c.templates[text] = t
	return t, nil
}

func (c *Cache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.templates)
}
