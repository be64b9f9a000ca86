package common

const (
	BaseWidth  = 360
	BaseHeight = 640

	// TPS is the fixed simulation rate; timers advance by FrameMs per tick.
	TPS     = 60
	FrameMs = 1000.0 / TPS

	Gravity = 1000.0
)
