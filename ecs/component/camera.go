package component

// Camera follows the player inside the level bounds. The owning
// entity's Transform holds the scroll position (top-left of the view).
type Camera struct {
	Zoom float64
	// LerpX/LerpY are the fraction of the remaining distance covered per
	// frame; 1 snaps.
	LerpX      float64
	LerpY      float64
	ViewWidth  float64
	ViewHeight float64
	// Following is set after the first update snaps onto the target.
	Following bool
}

var CameraComponent = NewComponent[Camera]()
