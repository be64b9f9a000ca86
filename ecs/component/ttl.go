package component

// TTLAction is what happens when a TTL runs out.
type TTLAction int

const (
	// TTLDestroy destroys the entity.
	TTLDestroy TTLAction = iota
	// TTLDeactivate hides the entity and disables its body and hazard so a
	// pool can reuse it.
	TTLDeactivate
)

// TTL is a millisecond time-to-live. The TTL system removes the component
// after acting on it.
type TTL struct {
	Millis float64
	Action TTLAction
}

var TTLComponent = NewComponent[TTL]()
