package component

// JumpState is the per-scene jump feel bookkeeping of the player.
type JumpState struct {
	// CoyoteMs counts down after leaving the ground; a ground jump is still
	// accepted while it is positive.
	CoyoteMs float64
	// BufferMs counts down after a jump press; the press is honored while it
	// is positive.
	BufferMs       float64
	JumpsRemaining int
}

var JumpStateComponent = NewComponent[JumpState]()
