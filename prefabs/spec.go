package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	return LoadSpecWithDefaults(filename, zero)
}

// LoadSpecWithDefaults decodes filename over a copy of defaults, so keys
// missing from the file keep their default value.
func LoadSpecWithDefaults[T any](filename string, defaults T) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := defaults
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Set is every prefab a scene is built from.
type Set struct {
	Game   *GameSpec
	Player *PlayerSpec
	Fire   *FireSpec
	Goal   *GoalSpec
	Barrel *BarrelSpec
}

func LoadSet() (*Set, error) {
	game, err := LoadGameSpec()
	if err != nil {
		return nil, err
	}
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	fire, err := LoadFireSpec()
	if err != nil {
		return nil, err
	}
	goal, err := LoadGoalSpec()
	if err != nil {
		return nil, err
	}
	barrel, err := LoadBarrelSpec()
	if err != nil {
		return nil, err
	}
	return &Set{Game: game, Player: player, Fire: fire, Goal: goal, Barrel: barrel}, nil
}

// GameSpec configures the engine and the scene-wide UI.
type GameSpec struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background *YAMLColor `yaml:"background"`
	Gravity    float64    `yaml:"gravity"`
	FadeMs     float64    `yaml:"fade_ms"`
	Camera     CameraSpec `yaml:"camera"`
	HUD        HUDSpec    `yaml:"hud"`
	Pause      PauseSpec  `yaml:"pause"`
	Touch      TouchSpec  `yaml:"touch"`
}

type CameraSpec struct {
	Zoom  float64 `yaml:"zoom"`
	LerpX float64 `yaml:"lerp_x"`
	LerpY float64 `yaml:"lerp_y"`
}

type HUDSpec struct {
	Text         string     `yaml:"text"`
	X            float64    `yaml:"x"`
	BottomOffset float64    `yaml:"bottom_offset"`
	Scale        float64    `yaml:"scale"`
	Color        *YAMLColor `yaml:"color"`
	Stroke       *YAMLColor `yaml:"stroke"`
	StrokeWidth  float64    `yaml:"stroke_width"`
	FadeDelayMs  float64    `yaml:"fade_delay_ms"`
	FadeMs       float64    `yaml:"fade_ms"`
	Ease         string     `yaml:"ease"`
}

type PauseSpec struct {
	Title string `yaml:"title"`
	Hint  string `yaml:"hint"`
}

type TouchSpec struct {
	Inset       float64 `yaml:"inset"`
	StickRadius float64 `yaml:"stick_radius"`
	KnobRadius  float64 `yaml:"knob_radius"`
	JumpRadius  float64 `yaml:"jump_radius"`
	PressScale  float64 `yaml:"press_scale"`
	PressMs     float64 `yaml:"press_ms"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SheetSpec describes a sprite sheet laid out in a single row.
type SheetSpec struct {
	Image   string `yaml:"image"`
	FrameW  int    `yaml:"frame_w"`
	FrameH  int    `yaml:"frame_h"`
	Margin  int    `yaml:"margin"`
	Spacing int    `yaml:"spacing"`
}

type AnimationSpec struct {
	Frames []int   `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Yoyo   bool    `yaml:"yoyo"`
	Repeat int     `yaml:"repeat"`
}

type PlayerSpec struct {
	Name          string                   `yaml:"name"`
	MoveSpeed     float64                  `yaml:"move_speed"`
	JumpVelocity  float64                  `yaml:"jump_velocity"`
	MaxJumps      int                      `yaml:"max_jumps"`
	CoyoteMs      float64                  `yaml:"coyote_ms"`
	JumpBufferMs  float64                  `yaml:"jump_buffer_ms"`
	StickDeadzone float64                  `yaml:"stick_deadzone"`
	Spawn         PointSpec                `yaml:"spawn"`
	Sheet         SheetSpec                `yaml:"sheet"`
	IdleFrame     int                      `yaml:"idle_frame"`
	JumpFrame     int                      `yaml:"jump_frame"`
	WalkAnimation string                   `yaml:"walk_animation"`
	Animations    map[string]AnimationSpec `yaml:"animations"`
}

type FireSpec struct {
	Sheet      SheetSpec                `yaml:"sheet"`
	Animation  string                   `yaml:"animation"`
	Animations map[string]AnimationSpec `yaml:"animations"`
}

type GoalSpec struct {
	Image string  `yaml:"image"`
	Mass  float64 `yaml:"mass"`
}

type BarrelSpec struct {
	Image      string  `yaml:"image"`
	BounceX    float64 `yaml:"bounce_x"`
	BounceY    float64 `yaml:"bounce_y"`
	MinDelayMs float64 `yaml:"min_delay_ms"`
	MaxDelayMs float64 `yaml:"max_delay_ms"`
	Script     string  `yaml:"script"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpecWithDefaults("game.yaml", DefaultGameSpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpecWithDefaults("player.yaml", DefaultPlayerSpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadFireSpec() (*FireSpec, error) {
	spec, err := LoadSpecWithDefaults("fire.yaml", DefaultFireSpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadGoalSpec() (*GoalSpec, error) {
	spec, err := LoadSpecWithDefaults("goal.yaml", DefaultGoalSpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadBarrelSpec() (*BarrelSpec, error) {
	spec, err := LoadSpecWithDefaults("barrel.yaml", DefaultBarrelSpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed color, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
