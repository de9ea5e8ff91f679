package material

import (
	"sync"
)

// Cache is a load-once wrapper around a Loader, keyed by material name.
// Property tables are immutable during a run, so cached entries never
// expire. Safe for concurrent use.
type Cache struct {
	loader Loader

	mu    sync.Mutex
	props map[string]*Properties
}

// NewCache wraps a Loader.
func NewCache(loader Loader) *Cache {
	return &Cache{
		loader: loader,
		props:  map[string]*Properties{},
	}
}

// LoadDensity returns the density (g/cm^3) of the material.
func (c *Cache) LoadDensity(material string) (float64, error) {
	props, err := c.properties(material)
	if err != nil {
		return 0, err
	}
	return props.Density, nil
}

// LoadCoefficientTable returns the energy-indexed mass attenuation
// coefficients of the material.
func (c *Cache) LoadCoefficientTable(material string) ([]Record, error) {
	props, err := c.properties(material)
	if err != nil {
		return nil, err
	}
	return props.Table, nil
}

func (c *Cache) properties(material string) (*Properties, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if props, cached := c.props[material]; cached {
		return props, nil
	}
	props, loadErr := c.loader.LoadProperties(material)
	if loadErr != nil {
		return nil, loadErr
	}
	c.props[material] = props
	return props, nil
}
