package component

// Transform places an entity in world space. X/Y is the point the sprite's
// origin is drawn at; a zero scale is treated as 1 by renderers.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
