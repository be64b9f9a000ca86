package component

// RenderLayer sorts draw order; higher indexes draw on top.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

const (
	LayerPlatforms = 10
	LayerHazards   = 20
	LayerGoal      = 30
	LayerBarrels   = 40
	LayerPlayer    = 50
	LayerHUD       = 1000
)
