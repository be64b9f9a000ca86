package prefabs

import (
	"image/color"

	"github.com/milk9111/barrelclimb/common"
)

func DefaultGameSpec() GameSpec {
	return GameSpec{
		Title:      "Barrel Climb",
		Width:      common.BaseWidth,
		Height:     common.BaseHeight,
		Background: &YAMLColor{Color: color.NRGBA{R: 0x33, G: 0xA5, B: 0xE7, A: 0xFF}},
		Gravity:    common.Gravity,
		FadeMs:     500,
		Camera:     CameraSpec{Zoom: 1, LerpX: 0.12, LerpY: 0.12},
		HUD: HUDSpec{
			Text:         "Arrows: Move   Space/Up: Jump   R: Restart   P: Pause",
			X:            8,
			BottomOffset: 8,
			Scale:        1,
			Color:        &YAMLColor{Color: color.White},
			Stroke:       &YAMLColor{Color: color.Black},
			StrokeWidth:  3,
			FadeDelayMs:  4500,
			FadeMs:       900,
			Ease:         "Sine.easeInOut",
		},
		Pause: PauseSpec{Title: "PAUSED", Hint: "Press P to resume"},
		Touch: TouchSpec{
			Inset:       90,
			StickRadius: 46,
			KnobRadius:  20,
			JumpRadius:  34,
			PressScale:  0.92,
			PressMs:     80,
		},
	}
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:          "player",
		MoveSpeed:     150,
		JumpVelocity:  -600,
		MaxJumps:      2,
		CoyoteMs:      120,
		JumpBufferMs:  120,
		StickDeadzone: 0.25,
		Spawn:         PointSpec{X: 180, Y: 400},
		Sheet:         SheetSpec{Image: "player_spritesheet.png", FrameW: 28, FrameH: 30, Margin: 1, Spacing: 1},
		IdleFrame:     3,
		JumpFrame:     2,
		WalkAnimation: "walking",
	}
}

func DefaultFireSpec() FireSpec {
	return FireSpec{
		Sheet:     SheetSpec{Image: "fire_spritesheet.png", FrameW: 20, FrameH: 21, Margin: 1, Spacing: 1},
		Animation: "burning",
	}
}

func DefaultGoalSpec() GoalSpec {
	return GoalSpec{Image: "gorilla3.png", Mass: 1}
}

func DefaultBarrelSpec() BarrelSpec {
	return BarrelSpec{
		Image:      "barrel.png",
		BounceX:    1,
		BounceY:    0.1,
		MinDelayMs: 100,
		MaxDelayMs: 5000,
		Script:     "spawner.tengo",
	}
}
