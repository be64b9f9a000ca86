package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type GoalTag struct{}

var GoalTagComponent = NewComponent[GoalTag]()

type PlatformTag struct{}

var PlatformTagComponent = NewComponent[PlatformTag]()

type SceneTag struct{}

var SceneTagComponent = NewComponent[SceneTag]()
