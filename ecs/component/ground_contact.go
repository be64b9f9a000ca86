package component

// GroundContact is derived from the physics step: Grounded is true while the
// body is blocked or touching downward.
type GroundContact struct {
	Grounded bool
}

var GroundContactComponent = NewComponent[GroundContact]()
