package component

// Barrel is a pooled rolling obstacle. Inactive barrels are hidden, their
// body is disabled and the spawner may reuse them.
type Barrel struct {
	Active bool
	Spawns int
}

var BarrelComponent = NewComponent[Barrel]()
