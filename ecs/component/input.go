package component

// Input stores per-frame input state for an entity.
type Input struct {
	Left  bool
	Right bool
	// StickX is the horizontal touch stick deflection in [-1, 1].
	StickX      float64
	JumpPressed bool
	// JumpQueued is set by the touch jump button and consumed by the player
	// controller.
	JumpQueued bool
}

var InputComponent = NewComponent[Input]()
