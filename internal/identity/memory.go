package identity

import "context"

// MemoryCache keeps the ID sets in process memory. This is the default
// backend for a single-process deployment.
type MemoryCache struct {
	sets map[Kind]map[uint]struct{}
}

func NewMemoryCache() *MemoryCache {
	sets := make(map[Kind]map[uint]struct{}, len(Kinds))
	for _, kind := range Kinds {
		sets[kind] = make(map[uint]struct{})
	}
	return &MemoryCache{sets: sets}
}

func (c *MemoryCache) Contains(_ context.Context, kind Kind, id uint) (bool, error) {
	_, ok := c.sets[kind][id]
	return ok, nil
}

func (c *MemoryCache) Record(_ context.Context, kind Kind, id uint) error {
	set, ok := c.sets[kind]
	if !ok {
		set = make(map[uint]struct{})
		c.sets[kind] = set
	}
	set[id] = struct{}{}
	return nil
}
