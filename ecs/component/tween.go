package component

// TweenProperty selects what a tween writes to.
type TweenProperty int

const (
	// TweenAlpha writes Text.Alpha.
	TweenAlpha TweenProperty = iota
	// TweenScale writes Transform.ScaleX and ScaleY.
	TweenScale
)

// Ease names an easing curve.
type Ease string

const (
	EaseLinear    Ease = "Linear"
	EaseSineInOut Ease = "Sine.easeInOut"
)

// Tween interpolates one property of its own entity from From to To.
// With Yoyo the tween plays back to From before finishing.
type Tween struct {
	Property   TweenProperty
	From       float64
	To         float64
	DelayMs    float64
	DurationMs float64
	Ease       Ease
	Yoyo       bool

	ElapsedMs float64
	Done      bool
}

var TweenComponent = NewComponent[Tween]()
