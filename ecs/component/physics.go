package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Width/Height are the collider box in pixels. Dynamic bodies never rotate.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
	// AlignTopLeft means the Transform is the collider's top-left corner
	// rather than its center.
	AlignTopLeft bool
	// Disabled bodies are taken out of the space but keep their Chipmunk
	// objects so they can be re-enabled.
	Disabled bool

	// VelocityX/VelocityY seed the body when the physics system creates it.
	VelocityX float64
	VelocityY float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// SetVelocity updates the live body when there is one and the seed
// velocity otherwise.
func (p *PhysicsBody) SetVelocity(x, y float64) {
	p.VelocityX = x
	p.VelocityY = y
	if p.Body != nil {
		p.Body.SetVelocity(x, y)
	}
}

func (p *PhysicsBody) Velocity() (float64, float64) {
	if p.Body != nil {
		v := p.Body.Velocity()
		return v.X, v.Y
	}
	return p.VelocityX, p.VelocityY
}
