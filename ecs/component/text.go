package component

import "image/color"

// Text is a screen-space label. OriginX/OriginY are fractions of the text
// block size (0,1 anchors the bottom-left corner at X/Y).
type Text struct {
	Value   string
	X       float64
	Y       float64
	OriginX float64
	OriginY float64
	Scale   float64
	Color   color.Color
	Stroke  color.Color
	// StrokeWidth is in output pixels; zero disables the outline.
	StrokeWidth float64
	Alpha       float64
	Hidden      bool
}

var TextComponent = NewComponent[Text]()
