package system

import (
	"github.com/milk9111/barrelclimb/common"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
)

type PlayerControllerSystem struct {
	emitEvents bool
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

// WithJumpEvents makes the controller push an EventJump for every jump.
func (p *PlayerControllerSystem) WithJumpEvents() *PlayerControllerSystem {
	p.emitEvents = true
	return p
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerComponent.Kind(),
		component.JumpStateComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		player, _ := ecs.Get(w, e, component.PlayerComponent)
		jump, _ := ecs.Get(w, e, component.JumpStateComponent)
		input, _ := ecs.Get(w, e, component.InputComponent)
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if player == nil || jump == nil || input == nil || body == nil {
			continue
		}

		onGround := false
		if gc, ok := ecs.Get(w, e, component.GroundContactComponent); ok {
			onGround = gc.Grounded
		}
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)
		anim, _ := ecs.Get(w, e, component.AnimationComponent)

		vx, vy := body.Velocity()

		tickJumpTimers(player, jump, onGround, common.FrameMs)

		moveLeft := input.Left || input.StickX < -player.StickDeadzone
		moveRight := input.Right || input.StickX > player.StickDeadzone
		switch {
		case moveLeft && !moveRight:
			vx = -player.MoveSpeed
			if sprite != nil {
				sprite.FlipX = false
			}
			if onGround && anim != nil && !anim.Playing {
				anim.Play(player.WalkAnimation)
			}
		case moveRight && !moveLeft:
			vx = player.MoveSpeed
			if sprite != nil {
				sprite.FlipX = true
			}
			if onGround && anim != nil && !anim.Playing {
				anim.Play(player.WalkAnimation)
			}
		case !moveLeft && !moveRight:
			vx = 0
			anim.Stop(player.WalkAnimation)
			if onGround {
				sprite.SetFrame(player.IdleFrame)
			}
		}

		if input.JumpQueued {
			jump.BufferMs = player.JumpBufferMs
			input.JumpQueued = false
		}
		if input.JumpPressed {
			jump.BufferMs = player.JumpBufferMs
		} else {
			jump.BufferMs = common.Approach(jump.BufferMs, common.FrameMs)
		}

		if tryJump(player, jump, onGround) {
			vy = player.JumpSpeed
			anim.Stop(player.WalkAnimation)
			sprite.SetFrame(player.JumpFrame)
			if p.emitEvents {
				w.Events().Push(ecs.Event{Kind: ecs.EventJump, Source: e})
			}
		}

		body.SetVelocity(vx, vy)
	}
}

// tickJumpTimers refreshes coyote time and the jump count on the ground and
// counts coyote time down in the air. Once coyote time runs out without a
// jump, the ground jump is forfeited.
func tickJumpTimers(player *component.Player, jump *component.JumpState, onGround bool, dtMs float64) {
	if onGround {
		jump.CoyoteMs = player.CoyoteMs
		jump.JumpsRemaining = player.MaxJumps
		return
	}
	jump.CoyoteMs = common.Approach(jump.CoyoteMs, dtMs)
	if jump.CoyoteMs <= 0 && jump.JumpsRemaining == player.MaxJumps {
		jump.JumpsRemaining = player.MaxJumps - 1
	}
}

// tryJump fires a buffered jump if one is allowed. The first jump after
// landing needs ground or coyote time; later ones happen in mid-air.
func tryJump(player *component.Player, jump *component.JumpState, onGround bool) bool {
	if jump.BufferMs <= 0 || jump.JumpsRemaining <= 0 {
		return false
	}
	canGroundJump := onGround || jump.CoyoteMs > 0
	airJump := jump.JumpsRemaining < player.MaxJumps
	if !canGroundJump && !airJump {
		return false
	}
	jump.JumpsRemaining--
	jump.CoyoteMs = 0
	jump.BufferMs = 0
	return true
}
