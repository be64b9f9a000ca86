package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
)

// TouchPoint is a touch position in screen coordinates.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// InputFrame is the raw device state sampled once per tick.
type InputFrame struct {
	Left        bool
	Right       bool
	JumpPressed bool

	TouchPressed  []TouchPoint
	TouchHeld     []TouchPoint
	TouchReleased []int
}

type InputSystem struct {
	poll func() InputFrame
}

func NewInputSystem() *InputSystem {
	return &InputSystem{poll: PollInput}
}

// NewInputSystemWithSource reads input from poll instead of the devices.
func NewInputSystemWithSource(poll func() InputFrame) *InputSystem {
	return &InputSystem{poll: poll}
}

// PollInput samples keyboard, the first gamepad and touches.
func PollInput() InputFrame {
	const stickDeadzone = 0.25

	frame := InputFrame{
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			frame.Left = true
		}
		if leftX > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			frame.Right = true
		}
		frame.JumpPressed = frame.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		frame.TouchPressed = append(frame.TouchPressed, TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		frame.TouchHeld = append(frame.TouchHeld, TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		frame.TouchReleased = append(frame.TouchReleased, int(id))
	}

	return frame
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.poll == nil {
		return
	}

	frame := i.poll()

	stickX := 0.0
	jumpTapped := false
	ecs.ForEach(w, component.TouchControlsComponent, func(e ecs.Entity, tc *component.TouchControls) {
		if !updateTouchControls(tc, frame) {
			if tc.Enabled {
				stickX = tc.Stick.X
			}
			return
		}
		jumpTapped = true
		stickX = tc.Stick.X
		if tw, ok := ecs.Get(w, e, component.TweenComponent); ok {
			tw.ElapsedMs = 0
			tw.Done = false
		}
	})

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Input) {
		input.Left = frame.Left
		input.Right = frame.Right
		input.JumpPressed = frame.JumpPressed
		input.StickX = stickX
		if jumpTapped {
			input.JumpQueued = true
		}
	})
}

// updateTouchControls applies one frame of touches to the stick and jump
// button and reports whether the jump button was tapped.
func updateTouchControls(tc *component.TouchControls, frame InputFrame) bool {
	if !tc.Enabled {
		if len(frame.TouchPressed) == 0 && len(frame.TouchHeld) == 0 {
			return false
		}
		tc.Enabled = true
	}

	jumped := false
	for _, p := range frame.TouchPressed {
		if !tc.Stick.Active && within(p.X, p.Y, tc.Stick.CenterX, tc.Stick.CenterY, tc.Stick.Radius) {
			tc.Stick.Active = true
			tc.Stick.TouchID = p.ID
			setStickVector(&tc.Stick, p.X, p.Y)
			continue
		}
		if within(p.X, p.Y, tc.JumpX, tc.JumpY, tc.JumpRadius) {
			jumped = true
		}
	}

	if tc.Stick.Active {
		for _, p := range frame.TouchHeld {
			if p.ID == tc.Stick.TouchID {
				setStickVector(&tc.Stick, p.X, p.Y)
			}
		}
		for _, id := range frame.TouchReleased {
			if id == tc.Stick.TouchID {
				resetStick(&tc.Stick)
			}
		}
	}

	return jumped
}

// setStickVector points the stick at x,y, clamped to the unit circle.
func setStickVector(s *component.TouchStick, x, y float64) {
	if s.Radius <= 0 {
		return
	}
	dx := x - s.CenterX
	dy := y - s.CenterY
	length := math.Hypot(dx, dy)
	if length == 0 {
		length = 1
	}
	clamped := math.Min(s.Radius, length)
	s.X = dx / length * (clamped / s.Radius)
	s.Y = dy / length * (clamped / s.Radius)
}

func resetStick(s *component.TouchStick) {
	s.Active = false
	s.TouchID = 0
	s.X = 0
	s.Y = 0
}

func within(x, y, cx, cy, r float64) bool {
	return math.Hypot(x-cx, y-cy) <= r
}
