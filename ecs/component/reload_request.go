package component

// ReloadRequest is a marker used to signal the game loop to rebuild the
// scene. Systems create a short-lived entity with this component.
type ReloadRequest struct {
	Reason string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
