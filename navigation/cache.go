package navigation

// FieldCache recomputes its field only when the source moves or the map changes
type FieldCache struct {
	Field *Field

	// PendingUpdate latches true on any map change, cleared after compute
	PendingUpdate bool
}

// NewFieldCache creates a cache that computes on first Update
func NewFieldCache(width, height int) *FieldCache {
	return &FieldCache{
		Field:         NewField(width, height),
		PendingUpdate: true,
	}
}

// Resize adjusts dimensions and forces recompute
func (c *FieldCache) Resize(width, height int) {
	c.Field.Resize(width, height)
	c.PendingUpdate = true
}

// MarkDirty forces recomputation on next Update
func (c *FieldCache) MarkDirty() {
	c.Field.Invalidate()
	c.PendingUpdate = true
}

// Update recomputes the field if needed
// Returns true if field was recomputed this call
func (c *FieldCache) Update(sourceX, sourceY int, isBlocked WallChecker) bool {
	f := c.Field
	if !c.PendingUpdate && f.Valid && f.SourceX == sourceX && f.SourceY == sourceY {
		return false
	}

	f.Compute(sourceX, sourceY, isBlocked)
	c.PendingUpdate = false
	return true
}

// Next returns cached step toward source
func (c *FieldCache) Next(x, y int) (int, int, bool) {
	return c.Field.Next(x, y)
}

// Distance returns cached BFS distance
func (c *FieldCache) Distance(x, y int) int {
	return c.Field.Distance(x, y)
}
