package component

// ScreenSpace marks renderable entities drawn in screen space, ignoring the
// camera (scroll factor 0).
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
