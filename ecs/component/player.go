package component

// Player holds the movement tuning for the controllable character. Speeds
// are px/s, timers are ms.
type Player struct {
	MoveSpeed    float64
	JumpSpeed    float64
	MaxJumps     int
	CoyoteMs     float64
	JumpBufferMs float64

	StickDeadzone float64
	IdleFrame     int
	JumpFrame     int
	WalkAnimation string
}

var PlayerComponent = NewComponent[Player]()
