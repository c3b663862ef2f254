// Package roots maps compilation units to output roots.
package roots

import (
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/core/ports"
)

// Cache resolves units to the directory of their definition file. It is built
// from the locator on first use and kept until Reset.
type Cache struct {
	mu          sync.Mutex
	defaultRoot string
	pinned      []string
	roots       map[string]string
}

// NewCache creates a cache that falls back to defaultRoot. Pinned units always
// resolve to defaultRoot; the host's implicit units are pinned whatever the
// extra list holds.
func NewCache(defaultRoot string, extraPinned []string) *Cache {
	pinned := append(domain.PinnedUnits(), extraPinned...)
	slices.Sort(pinned)

	return &Cache{
		defaultRoot: toSlash(defaultRoot),
		pinned:      slices.Compact(pinned),
	}
}

// Resolve returns the output root for unit.
func (c *Cache) Resolve(locator ports.UnitLocator, unit string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.build(locator)
	if root, ok := c.roots[unit]; ok {
		return root
	}
	return c.defaultRoot
}

// Roots returns every distinct root known to the cache, including the default
// root, sorted.
func (c *Cache) Roots(locator ports.UnitLocator) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.build(locator)
	roots := []string{c.defaultRoot}
	for _, root := range c.roots {
		roots = append(roots, root)
	}
	slices.Sort(roots)
	return slices.Compact(roots)
}

// Reset drops the cached mapping. The next Resolve rebuilds it.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roots = nil
}

// Built reports whether the mapping has been built.
func (c *Cache) Built() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roots != nil
}

func (c *Cache) build(locator ports.UnitLocator) {
	if c.roots != nil {
		return
	}

	c.roots = make(map[string]string)
	if locator != nil {
		for _, unit := range locator.Units() {
			def, err := locator.DefinitionFile(unit)
			if err != nil || def == "" {
				c.roots[unit] = c.defaultRoot
				continue
			}
			c.roots[unit] = path.Dir(toSlash(def))
		}
	}

	for _, unit := range c.pinned {
		c.roots[unit] = c.defaultRoot
	}
}

// toSlash also converts backslashes, which Windows hosts write into snapshots.
func toSlash(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}
