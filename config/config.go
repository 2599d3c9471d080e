package config

import (
	"image/color"
	"time"
)

// WindowConfig holds general window configuration
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PhysicsConfig contains the player movement constants. Units are pixels and
// seconds.
type PhysicsConfig struct {
	// Horizontal movement
	MoveAcceleration float64 `yaml:"move_acceleration"`
	MaxMoveSpeed     float64 `yaml:"max_move_speed"`
	GroundDragFactor float64 `yaml:"ground_drag_factor"`
	AirDragFactor    float64 `yaml:"air_drag_factor"`

	// Vertical movement
	MaxJumpTime        float64 `yaml:"max_jump_time"`
	JumpLaunchVelocity float64 `yaml:"jump_launch_velocity"`
	Gravity            float64 `yaml:"gravity"`
	MaxFallSpeed       float64 `yaml:"max_fall_speed"`
	JumpControlPower   float64 `yaml:"jump_control_power"`
}

// PlayerConfig contains player input and body configuration
type PlayerConfig struct {
	// Analog stick (accelerometer-style tilt)
	AnalogDeadzone float64 `yaml:"analog_deadzone"`
	AnalogScale    float64 `yaml:"analog_scale"`

	// Sustained same-direction input turns into a faster run
	SpeedyTicks      int     `yaml:"speedy_ticks"`
	SpeedyMultiplier float64 `yaml:"speedy_multiplier"`

	PowerUpDuration time.Duration `yaml:"power_up_duration"`

	// Dimensions. The origin is the bottom-center of the frame and the
	// collision box is a bottom-aligned fraction of it.
	FrameWidth   int     `yaml:"frame_width"`
	FrameHeight  int     `yaml:"frame_height"`
	BoxWidthPct  float64 `yaml:"box_width_pct"`
	BoxHeightPct float64 `yaml:"box_height_pct"`

	// Slide box, reported for drawing only
	SlideFrameWidth  int `yaml:"slide_frame_width"`
	SlideFrameHeight int `yaml:"slide_frame_height"`
}

// EnemyConfig contains patrol configuration shared by every enemy type
type EnemyConfig struct {
	MaxWaitTime float64 `yaml:"max_wait_time"`
	MoveSpeed   float64 `yaml:"move_speed"`

	FrameWidth   int     `yaml:"frame_width"`
	FrameHeight  int     `yaml:"frame_height"`
	BoxWidthPct  float64 `yaml:"box_width_pct"`
	BoxHeightPct float64 `yaml:"box_height_pct"`

	TintColors map[string]color.RGBA `yaml:"-"`
}

// PickupConfig contains score pickup values and bounce motion
type PickupConfig struct {
	GemValue     int `yaml:"gem_value"`
	PowerUpValue int `yaml:"power_up_value"`

	// Radius of the collection circle, in pixels
	Radius float64 `yaml:"radius"`

	BounceHeight float64 `yaml:"bounce_height"`
	BounceRate   float64 `yaml:"bounce_rate"`
	BounceSync   float64 `yaml:"bounce_sync"`
	SpriteHeight float64 `yaml:"sprite_height"`
	SpriteWidth  float64 `yaml:"sprite_width"`
}

// LevelConfig contains timer and scoring rules
type LevelConfig struct {
	TimeLimit       time.Duration `yaml:"time_limit"`
	BonusTimeScale  float64       `yaml:"bonus_time_scale"`
	PointsPerSecond int           `yaml:"points_per_second"`
	WarningTime     time.Duration `yaml:"warning_time"`
}

// SessionConfig contains level cycling rules
type SessionConfig struct {
	LevelCount int    `yaml:"level_count"`
	LevelsDir  string `yaml:"levels_dir"`
}

// HUDConfig contains HUD colors and layout
type HUDConfig struct {
	Margin         float64
	FontSize       float64
	TitleFontSize  float64
	TimeColor      color.RGBA
	WarningColor   color.RGBA
	ScoreColor     color.RGBA
	ShadowColor    color.RGBA
	WinColor       color.RGBA
	LoseColor      color.RGBA
	OverlayColor   color.RGBA
	OverlayFadeSec float32
	WinText        string
	LoseText       string
	ContinueHint   string
}

// RenderConfig contains the flat colors used in place of sprites
type RenderConfig struct {
	BackgroundColors []color.RGBA
	BlockColors      []color.RGBA
	PlatformColor    color.RGBA
	ExitColor        color.RGBA
	PlayerColor      color.RGBA
	PoweredColor     color.RGBA
	DeadColor        color.RGBA
	GemColor         color.RGBA
	PowerUpColor     color.RGBA
}

// CameraConfig controls horizontal scrolling on maps wider than the window
type CameraConfig struct {
	FollowSmoothing float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonText      color.RGBA
	ButtonWidth     int
	ButtonHeight    int
	Title           string
}

// Global configuration instances
var Window WindowConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Pickup PickupConfig
var Level LevelConfig
var Session SessionConfig
var HUD HUDConfig
var Render RenderConfig
var Camera CameraConfig
var Menu MenuConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	BlueViolet   = color.RGBA{R: 138, G: 43, B: 226, A: 255}
	DarkBlue     = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

func init() {
	Window = WindowConfig{
		Width:  800,
		Height: 480,
		Title:  "Nightfall",
		TPS:    60,
	}

	Physics = PhysicsConfig{
		MoveAcceleration: 13000.0,
		MaxMoveSpeed:     1750.0,
		GroundDragFactor: 0.48,
		AirDragFactor:    0.58,

		MaxJumpTime:        0.35,
		JumpLaunchVelocity: -3500.0,
		Gravity:            3400.0,
		MaxFallSpeed:       550.0,
		JumpControlPower:   0.14,
	}

	Player = PlayerConfig{
		AnalogDeadzone: 0.10,
		AnalogScale:    1.5,

		SpeedyTicks:      150,
		SpeedyMultiplier: 1.5,

		PowerUpDuration: 6 * time.Second,

		FrameWidth:   64,
		FrameHeight:  64,
		BoxWidthPct:  0.4,
		BoxHeightPct: 0.8,

		SlideFrameWidth:  64,
		SlideFrameHeight: 40,
	}

	Enemy = EnemyConfig{
		MaxWaitTime: 1.6,
		MoveSpeed:   128.0,

		FrameWidth:   64,
		FrameHeight:  64,
		BoxWidthPct:  0.35,
		BoxHeightPct: 0.7,

		TintColors: map[string]color.RGBA{
			"A": {R: 200, G: 60, B: 60, A: 255},
			"B": {R: 160, G: 60, B: 200, A: 255},
		},
	}

	Pickup = PickupConfig{
		GemValue:     10,
		PowerUpValue: 100,
		Radius:       32.0 / 3.0,

		BounceHeight: 0.06,
		BounceRate:   3.0,
		BounceSync:   -0.75,
		SpriteHeight: 32,
		SpriteWidth:  32,
	}

	Level = LevelConfig{
		TimeLimit:       2 * time.Minute,
		BonusTimeScale:  75.0,
		PointsPerSecond: 5,
		WarningTime:     30 * time.Second,
	}

	Session = SessionConfig{
		LevelCount: 5,
		LevelsDir:  "levels",
	}

	HUD = HUDConfig{
		Margin:         8,
		FontSize:       18,
		TitleFontSize:  40,
		TimeColor:      Blue,
		WarningColor:   Red,
		ScoreColor:     BlueViolet,
		ShadowColor:    Black,
		WinColor:       BrightGreen,
		LoseColor:      Red,
		OverlayColor:   BlackOverlay,
		OverlayFadeSec: 0.4,
		WinText:        "YOU WIN",
		LoseText:       "YOU LOSE",
		ContinueHint:   "Press any key to continue",
	}

	Render = RenderConfig{
		BackgroundColors: []color.RGBA{
			DarkBlue,
			{R: 20, G: 20, B: 70, A: 255},
			{R: 40, G: 10, B: 60, A: 255},
			{R: 10, G: 40, B: 50, A: 255},
			{R: 30, G: 30, B: 30, A: 255},
		},
		BlockColors: []color.RGBA{
			{R: 90, G: 70, B: 50, A: 255},
			{R: 100, G: 78, B: 55, A: 255},
			{R: 84, G: 64, B: 46, A: 255},
			{R: 110, G: 85, B: 60, A: 255},
			{R: 95, G: 75, B: 58, A: 255},
			{R: 78, G: 60, B: 44, A: 255},
			{R: 104, G: 80, B: 50, A: 255},
		},
		PlatformColor: color.RGBA{R: 60, G: 160, B: 60, A: 255},
		ExitColor:     Gold,
		PlayerColor:   LightBlue,
		PoweredColor:  Orange,
		DeadColor:     color.RGBA{R: 120, G: 120, B: 120, A: 255},
		GemColor:      color.RGBA{R: 0, G: 220, B: 220, A: 255},
		PowerUpColor:  color.RGBA{R: 255, G: 80, B: 200, A: 255},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 10, G: 10, B: 40, A: 255},
		TitleColor:      Gold,
		ButtonIdle:      color.RGBA{R: 60, G: 100, B: 160, A: 255},
		ButtonHover:     LightBlue,
		ButtonPressed:   color.RGBA{R: 40, G: 70, B: 120, A: 255},
		ButtonText:      White,
		ButtonWidth:     220,
		ButtonHeight:    44,
		Title:           "NIGHTFALL",
	}
}
