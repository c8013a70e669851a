package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all systems and renderers run on.
var Default = ecs.LayerDefault

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 // pixels per frame per held direction

	// Combat
	Health       int
	InvulnFrames int

	// Dimensions
	Width  float64
	Height float64

	Color color.RGBA
}

// EnemyConfig contains enemy behavior configuration
type EnemyConfig struct {
	// Speed scaling across rounds
	BaseSpeed      float64
	SpeedIncrement float64 // added once per cleared round
	MaxSpeed       float64 // cap; speed stays monotonically non-decreasing

	// Damage dealt on player contact
	ContactDamage int

	// Random behavior: frames between heading re-rolls
	HeadingInterval int

	// Patrol behavior: frames between direction changes
	PatrolInterval int

	// Dimensions
	Width  float64
	Height float64

	// Per-behavior fill colors
	RandomColor color.RGBA
	ChaserColor color.RGBA
	PatrolColor color.RGBA
}

// CollectibleConfig contains gem configuration
type CollectibleConfig struct {
	Value int // score awarded per gem

	// Bob animation
	BobAmplitude float64
	BobSpeed     float64

	// Dimensions
	Radius float64

	Color color.RGBA
}

// CollisionConfig contains distance thresholds for contact checks
type CollisionConfig struct {
	CollectRadius float64 // player center to gem center
	DamageRadius  float64 // player center to enemy center
}

// RoundConfig contains round progression configuration
type RoundConfig struct {
	BannerFrames   int // how long the "ROUND N" banner is shown
	GameOverFrames int // delay before switching to the game over scene
}

// ArenaConfig contains playfield configuration
type ArenaConfig struct {
	WallThickness   float64
	BackgroundColor color.RGBA
	BorderColor     color.RGBA
}

// HUDConfig contains score/health/round display configuration
type HUDConfig struct {
	Margin          float64
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
	HealthBarLow    color.RGBA
	TextColor       color.RGBA
}

// IntroConfig contains presentation sequence configuration
type IntroConfig struct {
	LogoFrames     int // studio logo stage
	SubtitleFrames int // subtitle reveal stage
	LoadingFrames  int // loading bar stage

	StudioName   string
	Subtitle     string
	Title        string
	Prompt       string
	LoadingLabel string

	LogoColor       color.RGBA
	SubtitleColor   color.RGBA
	TitleColor      color.RGBA
	PromptColor     color.RGBA
	BackgroundColor color.RGBA
	BarBgColor      color.RGBA
	BarFgColor      color.RGBA
	BarWidth        float64
	BarHeight       float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	TitleY          float64
	ScoreY          float64
	HintY           float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipIntro bool // Skip the intro sequence and go directly to the game
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Collectible CollectibleConfig
var Collision CollisionConfig
var Round RoundConfig
var Arena ArenaConfig
var HUD HUDConfig
var Intro IntroConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 230, G: 50, B: 50, A: 255}
	Green        = color.RGBA{R: 60, G: 220, B: 90, A: 255}
	Purple       = color.RGBA{R: 190, G: 90, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		Speed:        3.0,
		Health:       100,
		InvulnFrames: 45,
		Width:        16,
		Height:       16,
		Color:        Green,
	}

	Enemy = EnemyConfig{
		BaseSpeed:       1.5,
		SpeedIncrement:  0.25,
		MaxSpeed:        4.0,
		ContactDamage:   10,
		HeadingInterval: 30,
		PatrolInterval:  90,
		Width:           16,
		Height:          16,
		RandomColor:     Purple,
		ChaserColor:     Red,
		PatrolColor:     Orange,
	}

	Collectible = CollectibleConfig{
		Value:        10,
		BobAmplitude: 3.0,
		BobSpeed:     0.08,
		Radius:       5,
		Color:        Yellow,
	}

	Collision = CollisionConfig{
		CollectRadius: 14.0,
		DamageRadius:  14.0,
	}

	Round = RoundConfig{
		BannerFrames:   90,
		GameOverFrames: 90,
	}

	Arena = ArenaConfig{
		WallThickness:   4,
		BackgroundColor: color.RGBA{R: 18, G: 20, B: 32, A: 255},
		BorderColor:     color.RGBA{R: 70, G: 80, B: 110, A: 255},
	}

	HUD = HUDConfig{
		Margin:          10,
		HealthBarWidth:  130,
		HealthBarHeight: 13,
		HealthBarBg:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthBarFg:     color.RGBA{R: 40, G: 220, B: 40, A: 255},
		HealthBarLow:    color.RGBA{R: 220, G: 60, B: 40, A: 255},
		TextColor:       White,
	}

	Intro = IntroConfig{
		LogoFrames:     150, // 2.5s at 60fps
		SubtitleFrames: 90,
		LoadingFrames:  150,

		StudioName:   "AUTOMOTO GAMES",
		Subtitle:     "presents",
		Title:        "GEM RUSH",
		Prompt:       "PRESS SPACE",
		LoadingLabel: "LOADING",

		LogoColor:       White,
		SubtitleColor:   color.RGBA{R: 170, G: 170, B: 190, A: 255},
		TitleColor:      Yellow,
		PromptColor:     White,
		BackgroundColor: color.RGBA{R: 10, G: 12, B: 24, A: 255},
		BarBgColor:      color.RGBA{R: 40, G: 40, B: 55, A: 255},
		BarFgColor:      Green,
		BarWidth:        240,
		BarHeight:       14,
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:      LightRed,
		TextColor:       White,
		HintColor:       color.RGBA{R: 170, G: 170, B: 190, A: 255},
		TitleY:          90,
		ScoreY:          140,
		HintY:           330,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	Debug = DebugConfig{
		SkipIntro: false,
	}
}
