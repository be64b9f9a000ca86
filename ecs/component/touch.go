package component

// TouchStick is the state of the virtual joystick. X/Y is the normalized
// deflection, clamped to the unit circle.
type TouchStick struct {
	Active  bool
	TouchID int
	CenterX float64
	CenterY float64
	Radius  float64
	X       float64
	Y       float64
}

// TouchControls is the on-screen joystick and jump button. They stay hidden
// until the first touch is seen.
type TouchControls struct {
	Enabled bool
	Stick   TouchStick

	KnobRadius float64
	JumpRadius float64
	JumpX      float64
	JumpY      float64
	// Inset is the distance of both controls from the screen's side and
	// bottom edges.
	Inset float64
}

var TouchControlsComponent = NewComponent[TouchControls]()
