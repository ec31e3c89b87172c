package procgen

// PlaneParams are the inputs of Plane.
type PlaneParams struct {
	Width, Height float32
	Subdivisions  int
}

// CylinderParams are the inputs of Cylinder.
type CylinderParams struct {
	Height, Radius float32
	Segments       int
}

// SphereParams are the inputs of Sphere.
type SphereParams struct {
	Radius   float32
	Segments int
}

// CubeParams are the inputs of Cube.
type CubeParams struct {
	Size float32
}

// DefaultCacheLimit is the number of meshes a Cache keeps before evicting the oldest.
const DefaultCacheLimit = 32

// Cache memoises generated meshes by their parameter tuple so that callers polling
// UI values every frame only pay for generation when a value actually changes.
//
// Returned MeshData is shared with the cache and must be treated as read-only.
// A Cache is not safe for concurrent use.
type Cache struct {
	limit   int
	entries map[any]MeshData
	order   []any

	hits   int
	misses int
}

// NewCache creates a cache holding at most limit meshes (DefaultCacheLimit if limit <= 0).
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	return &Cache{
		limit:   limit,
		entries: make(map[any]MeshData, limit),
	}
}

// Plane returns the plane for p and whether it had to be generated.
func (c *Cache) Plane(p PlaneParams) (MeshData, bool) {
	return c.get(p, func() MeshData { return Plane(p.Width, p.Height, p.Subdivisions) })
}

// Cylinder returns the cylinder for p and whether it had to be generated.
func (c *Cache) Cylinder(p CylinderParams) (MeshData, bool) {
	return c.get(p, func() MeshData { return Cylinder(p.Height, p.Radius, p.Segments) })
}

// Sphere returns the sphere for p and whether it had to be generated.
func (c *Cache) Sphere(p SphereParams) (MeshData, bool) {
	return c.get(p, func() MeshData { return Sphere(p.Radius, p.Segments) })
}

// Cube returns the cube for p and whether it had to be generated.
func (c *Cache) Cube(p CubeParams) (MeshData, bool) {
	return c.get(p, func() MeshData { return Cube(p.Size) })
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	return len(c.entries)
}

func (c *Cache) get(key any, generate func() MeshData) (MeshData, bool) {
	if mesh, ok := c.entries[key]; ok {
		c.hits++
		return mesh, false
	}
	c.misses++

	// A tuple holding NaN is never equal to itself, so it could be stored but never
	// found or evicted.
	if !selfEqual(key) {
		return generate(), true
	}

	if len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	mesh := generate()
	c.entries[key] = mesh
	c.order = append(c.order, key)
	return mesh, true
}

func selfEqual(key any) bool {
	return key == key
}
