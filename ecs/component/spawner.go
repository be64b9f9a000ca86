package component

// Spawner periodically emits barrels at the goal. Times are ms.
type Spawner struct {
	Speed      float64
	LifespanMs float64
	MinDelayMs float64
	MaxDelayMs float64
	// TimerMs counts down to the next spawn.
	TimerMs float64
	Armed   bool

	BounceX float64
	BounceY float64
}

var SpawnerComponent = NewComponent[Spawner]()
