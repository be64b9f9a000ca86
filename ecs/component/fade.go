package component

// FadePhase is the stage of a camera fade.
type FadePhase int

const (
	FadeNone FadePhase = iota
	FadeOut
	FadeDone
)

// Fade drives the full-screen fade to black that precedes a scene restart.
type Fade struct {
	Phase      FadePhase
	ElapsedMs  float64
	DurationMs float64
	Alpha      float64
	Reason     string
}

var FadeComponent = NewComponent[Fade]()
