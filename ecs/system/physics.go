package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/barrelclimb/common"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
)

const (
	collisionTypeBody cp.CollisionType = iota + 1
	collisionTypePlayerGround
	collisionTypeSolid
)

const (
	defaultSideElasticity  = 1.0
	defaultFloorElasticity = 0.1
)

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	gravity       float64

	sideElasticity  float64
	floorElasticity float64

	entities     map[ecs.Entity]*bodyInfo
	groundShapes map[*cp.Shape]ecs.Entity
	grounded     map[ecs.Entity]bool
}

type bodyInfo struct {
	body        *cp.Body
	mainShape   *cp.Shape
	groundShape *cp.Shape
	shapes      []*cp.Shape
	static      bool
	disabled    bool
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	ps := &PhysicsSystem{
		gravity:         gravity,
		sideElasticity:  defaultSideElasticity,
		floorElasticity: defaultFloorElasticity,
		entities:        make(map[ecs.Entity]*bodyInfo),
		groundShapes:    make(map[*cp.Shape]ecs.Entity),
		grounded:        make(map[ecs.Entity]bool),
	}
	ps.space = ps.newSpace()
	return ps
}

// SetBoundsElasticity sets the bounciness of the world's left/right edges and
// of its top/bottom edges. Call before the first Update.
func (ps *PhysicsSystem) SetBoundsElasticity(side, floor float64) {
	ps.sideElasticity = side
	ps.floorElasticity = floor
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
	return space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = ps.newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
	ps.resetGroundContacts()

	ps.space.Step(1.0 / common.TPS)

	ps.syncTransforms(w)
	ps.flushGroundContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		playerEntity, okA := sys.groundShapes[shapeA]
		if !okA {
			var okB bool
			playerEntity, okB = sys.groundShapes[shapeB]
			if !okB {
				return true
			}
		}

		n := arb.Normal()
		if !okA {
			n = n.Neg()
		}
		// Only support from below counts; y grows downward.
		if n.Y <= 0.5 {
			return true
		}
		sys.grounded[playerEntity] = true
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil {
		return
	}

	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil {
			layer, _ := ecs.Get(w, e, component.CollisionLayerComponent)
			isPlayer := ecs.Has(w, e, component.PlayerTagComponent)
			info = ps.createBodyInfo(transform, bodyComp, layer, isPlayer)
			if info == nil {
				return
			}
			ps.entities[e] = info
			if info.groundShape != nil {
				ps.groundShapes[info.groundShape] = e
			}
			bodyComp.Body = info.body
			bodyComp.Shape = info.mainShape
			if !bodyComp.Disabled {
				ps.enable(info, transform, bodyComp)
			}
			return
		}

		if bodyComp.Body == nil || bodyComp.Shape == nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.mainShape
		}
		if info.static || bodyComp.Disabled == info.disabled {
			return
		}
		if bodyComp.Disabled {
			ps.disable(info)
		} else {
			ps.enable(info, transform, bodyComp)
		}
	})
}

// enable adds a body to the space at its Transform with the seed velocity.
func (ps *PhysicsSystem) enable(info *bodyInfo, transform *component.Transform, bodyComp *component.PhysicsBody) {
	if !info.static {
		x, y := bodyCenter(transform, bodyComp)
		info.body.SetPosition(cp.Vector{X: x, Y: y})
		info.body.SetVelocity(bodyComp.VelocityX, bodyComp.VelocityY)
		info.body.SetAngularVelocity(0)
		ps.space.AddBody(info.body)
	}
	for _, shape := range info.shapes {
		ps.space.AddShape(shape)
	}
	info.disabled = false
}

func (ps *PhysicsSystem) disable(info *bodyInfo) {
	for _, shape := range info.shapes {
		ps.space.RemoveShape(shape)
	}
	if !info.static {
		ps.space.RemoveBody(info.body)
	}
	info.disabled = true
}

func bodyCenter(transform *component.Transform, bodyComp *component.PhysicsBody) (float64, float64) {
	if bodyComp.AlignTopLeft {
		return transform.X + bodyComp.Width/2, transform.Y + bodyComp.Height/2
	}
	return transform.X, transform.Y
}

func shapeFilter(layer *component.CollisionLayer) cp.ShapeFilter {
	category := component.CategoryPlatform
	mask := ^uint32(0)
	if layer != nil {
		if layer.Category != 0 {
			category = layer.Category
		}
		if layer.Mask != 0 {
			mask = layer.Mask
		}
	}
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(category), Mask: uint(mask)}
}

// createBodyInfo builds the Chipmunk objects for a body without adding them
// to the space.
func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, layer *component.CollisionLayer, isPlayer bool) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		return nil
	}

	filter := shapeFilter(layer)
	info := &bodyInfo{static: bodyComp.Static, disabled: true}

	if bodyComp.Static {
		cx, cy := bodyCenter(transform, bodyComp)
		bb := cp.BB{L: cx - width/2, B: cy - height/2, R: cx + width/2, T: cy + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filter)

		info.body = ps.space.StaticBody
		info.mainShape = shape
		info.shapes = []*cp.Shape{shape}
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// Infinite moment keeps boxes upright.
	body := cp.NewBody(mass, math.Inf(1))
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeBody)
	shape.SetFilter(filter)

	info.body = body
	info.mainShape = shape
	info.shapes = []*cp.Shape{shape}

	if isPlayer {
		if groundShape := ps.createGroundSensor(bodyComp, body, filter); groundShape != nil {
			info.groundShape = groundShape
			info.shapes = append(info.shapes, groundShape)
		}
	}

	return info
}

func (ps *PhysicsSystem) createGroundSensor(bodyComp *component.PhysicsBody, body *cp.Body, filter cp.ShapeFilter) *cp.Shape {
	width := bodyComp.Width
	height := bodyComp.Height

	groundBB := cp.BB{
		L: -width * 0.45,
		B: height / 2.0,
		R: width * 0.45,
		T: height/2.0 + 2,
	}

	groundShape := cp.NewBox2(body, groundBB, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypePlayerGround)
	groundShape.SetFilter(filter)
	return groundShape
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent)
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height

	thickness := 1.0
	segments := []struct {
		a, b       cp.Vector
		elasticity float64
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}, elasticity: ps.floorElasticity},
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}, elasticity: ps.floorElasticity},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}, elasticity: ps.sideElasticity},
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}, elasticity: ps.sideElasticity},
	}

	filter := cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(component.CategoryBounds),
		Mask:       uint(component.CategoryPlayer | component.CategoryBarrel),
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetElasticity(seg.elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) resetGroundContacts() {
	clear(ps.grounded)
}

func (ps *PhysicsSystem) flushGroundContacts(w *ecs.World) {
	ecs.ForEach(w, component.GroundContactComponent, func(e ecs.Entity, gc *component.GroundContact) {
		gc.Grounded = ps.grounded[e]
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static || bodyComp.Disabled {
			return
		}
		pos := bodyComp.Body.Position()
		if bodyComp.AlignTopLeft {
			transform.X = pos.X - bodyComp.Width/2.0
			transform.Y = pos.Y - bodyComp.Height/2.0
		} else {
			transform.X = pos.X
			transform.Y = pos.Y
		}
		vel := bodyComp.Body.Velocity()
		bodyComp.VelocityX = vel.X
		bodyComp.VelocityY = vel.Y
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && (ecs.Has(w, e, component.PhysicsBodyComponent) || ecs.Has(w, e, component.LevelBoundsComponent)) {
			continue
		}

		if !info.disabled {
			for _, shape := range info.shapes {
				ps.space.RemoveShape(shape)
			}
			if info.body != nil && !info.static {
				ps.space.RemoveBody(info.body)
			}
		}
		for _, shape := range info.shapes {
			delete(ps.groundShapes, shape)
		}

		delete(ps.entities, e)
		delete(ps.grounded, e)
	}
}
