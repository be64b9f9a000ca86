package component

// Collision categories. A shape collides with another when each one's
// category is in the other's mask.
const (
	CategoryPlatform uint32 = 1 << iota
	CategoryBounds
	CategoryPlayer
	CategoryBarrel
	CategoryGoal
)

// CollisionLayer lets entities declare a collision category and mask so the
// physics system can filter contacts between groups of objects.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// the physics system treats it as CategoryPlatform.
	Category uint32
	// Mask is a bitmask of categories this entity collides with. If zero,
	// the physics system treats it as all bits set.
	Mask uint32
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
