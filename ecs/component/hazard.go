package component

// HazardKind names what the player touched; it ends up in the restart reason.
type HazardKind string

const (
	HazardFire   HazardKind = "fire"
	HazardBarrel HazardKind = "barrel"
	HazardGoal   HazardKind = "goal"
)

// Hazard marks an entity that restarts the scene on overlap with the player.
// Bounds are in world units relative to Transform.
type Hazard struct {
	Kind    HazardKind
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	// Disabled hazards are skipped (pooled barrels waiting for reuse).
	Disabled bool
}

var HazardComponent = NewComponent[Hazard]()
