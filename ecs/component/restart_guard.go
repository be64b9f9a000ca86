package component

// RestartGuard lives on the scene entity. Once Restarting is set, further
// hazard overlaps are ignored until the scene is rebuilt.
type RestartGuard struct {
	Restarting bool
	Reason     string
}

var RestartGuardComponent = NewComponent[RestartGuard]()
