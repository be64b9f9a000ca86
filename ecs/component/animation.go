package component

// AnimationDef describes a frame sequence over Sprite.Frames.
type AnimationDef struct {
	Name   string
	Frames []int
	FPS    float64
	// Yoyo plays the sequence forward then backward before repeating.
	Yoyo bool
	// Repeat is the number of extra plays; -1 loops forever.
	Repeat int
}

// Animation is the playback state of an entity's sprite sheet.
type Animation struct {
	Defs    map[string]AnimationDef
	Current string
	Playing bool

	// cursor into Defs[Current].Frames, direction (+1/-1), elapsed time in the
	// current frame and plays left.
	Cursor    int
	Direction int
	ElapsedMs float64
	Remaining int
}

// Play starts def name from its first frame unless it is already playing.
func (a *Animation) Play(name string) bool {
	if a == nil {
		return false
	}
	def, ok := a.Defs[name]
	if !ok || len(def.Frames) == 0 {
		return false
	}
	if a.Playing && a.Current == name {
		return true
	}
	a.Current = name
	a.Playing = true
	a.Cursor = 0
	a.Direction = 1
	a.ElapsedMs = 0
	a.Remaining = def.Repeat
	return true
}

// Stop halts playback if name is the current animation. An empty name stops
// whatever is playing.
func (a *Animation) Stop(name string) {
	if a == nil {
		return
	}
	if name == "" || a.Current == name {
		a.Playing = false
	}
}

// CurrentFrame returns the sheet frame index of the playback cursor.
func (a *Animation) CurrentFrame() (int, bool) {
	if a == nil {
		return 0, false
	}
	def, ok := a.Defs[a.Current]
	if !ok || a.Cursor < 0 || a.Cursor >= len(def.Frames) {
		return 0, false
	}
	return def.Frames[a.Cursor], true
}

var AnimationComponent = NewComponent[Animation]()
