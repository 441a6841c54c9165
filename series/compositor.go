// SPDX-License-Identifier: MIT
// Package: tsgen/series
//
// compositor.go — ordered id → name registry of a series' components.

package series

// Compositor keeps component display names by ID in insertion order.
type Compositor struct {
	ids   []string
	names map[string]string
}

// NewCompositor returns an empty registry.
func NewCompositor() *Compositor {
	return &Compositor{names: make(map[string]string)}
}

// Register adds id with name, or renames it when already present.
func (c *Compositor) Register(id, name string) {
	if _, ok := c.names[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.names[id] = name
}

// Rename updates the name of a registered id. Unknown ids are ignored.
func (c *Compositor) Rename(id, name string) {
	if _, ok := c.names[id]; ok {
		c.names[id] = name
	}
}

// Remove drops id from the registry.
func (c *Compositor) Remove(id string) {
	if _, ok := c.names[id]; !ok {
		return
	}
	delete(c.names, id)
	for i, x := range c.ids {
		if x == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
}

// Name returns the registered name of id.
func (c *Compositor) Name(id string) (string, bool) {
	n, ok := c.names[id]
	return n, ok
}

// HasName reports whether any registered id carries name.
func (c *Compositor) HasName(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// IDs lists registered ids in insertion order.
func (c *Compositor) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Names lists registered names in insertion order.
func (c *Compositor) Names() []string {
	out := make([]string, len(c.ids))
	for i, id := range c.ids {
		out[i] = c.names[id]
	}
	return out
}

// Len returns the number of registered components.
func (c *Compositor) Len() int { return len(c.ids) }

func (c *Compositor) copy() *Compositor {
	cp := NewCompositor()
	for _, id := range c.ids {
		cp.Register(id, c.names[id])
	}
	return cp
}
