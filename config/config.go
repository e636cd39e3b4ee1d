package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default = ecs.LayerDefault

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TileSize int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed       float64 // world scroll speed per frame while a direction is held
	JumpImpulse float64 // upward velocity applied on jump (negative = up)
	Gravity     float64

	// Combat
	MaxHealth         int
	ContactDamage     int // damage taken from touching an enemy
	BulletDamage      int // damage taken from an enemy bullet
	ShootCooldownMS   int64
	InvincibilityMS   int64
	BulletSpeed       float64
	BulletWidth       float64
	BulletHeight      float64
	AnimationInterval int64 // ms between walk-cycle frames
	WalkFrames        int

	// Dimensions
	Width  float64
	Height float64

	// Base stats (modifiers stack on top, see components.Stats)
	BaseStrength int
	BaseDefense  int
}

// EnemyTypeConfig contains configuration for a specific enemy kind
type EnemyTypeConfig struct {
	Name   string
	Health int
	Score  int // points awarded on defeat

	Width  float64
	Height float64

	Gravity float64

	// Sentry (ranged guard)
	DetectionRange float64
	FireRateMS     int64
	BulletSpeedX   float64
	BulletSpreadY  float64 // vertical speed of the angled spread bullets
	BulletWidth    float64
	BulletHeight   float64

	// Flitter (patrol flyer)
	PatrolSpeedX     float64
	PatrolSpeedY     float64
	PatrolAmplitudeX float64
	PatrolAmplitudeY float64

	// Golem (boss)
	IdleDwellMS   int64
	ThrowWindupMS int64
	AttackRange   float64
	JumpSpeedX    float64
	JumpImpulse   float64
	RockSpeed     float64
	RockLob       float64 // initial upward speed of a thrown rock
	RockGravity   float64
	RockDamage    int
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// ItemTypeConfig describes one collectable item kind
type ItemTypeConfig struct {
	Name   string
	Value  int // heal amount or score points
	Width  float64
	Height float64
}

// ItemConfig contains item and drop-resolver configuration
type ItemConfig struct {
	Types map[string]ItemTypeConfig

	PopVelocity float64 // initial upward velocity on drop
	Gravity     float64

	// Drop cascade ceilings over a [1,100] roll, evaluated in order:
	// roll <= BigHealCeiling        -> big heal
	// roll <= SmallHealCeiling      -> small heal
	// roll <= ScoreCeiling          -> score orb
	// otherwise                     -> nothing
	BigHealCeiling   int
	SmallHealCeiling int
	ScoreCeiling     int
}

// SessionConfig contains score/session bookkeeping configuration
type SessionConfig struct {
	ScoreDigits      int
	EnemyKillScore   int
	TenKillThreshold int
}

// UIConfig contains HUD configuration
type UIConfig struct {
	HealthBarX      float64
	HealthBarY      float64
	HealthCellW     float64
	HealthCellH     float64
	BossBarWidth    float64
	BossBarHeight   float64
	BossBarMargin   float64
	GameOverFadeSec float32
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Item ItemConfig
var Session SessionConfig
var UI UIConfig

// Enemy kind names, also used as sprite-sheet keys
const (
	KindSentry  = "sentry"
	KindFlitter = "flitter"
	KindGolem   = "golem"
)

// Item kind names
const (
	ItemSmallHeal = "small_heal"
	ItemBigHeal   = "big_heal"
	ItemScoreOrb  = "score_orb"
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	SkyBlue      = color.RGBA{R: 80, G: 140, B: 215, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    800,
		Height:   480,
		TileSize: 32,
	}

	Player = PlayerConfig{
		Speed:       5.0,
		JumpImpulse: -12.0,
		Gravity:     0.5,

		MaxHealth:         10,
		ContactDamage:     1,
		BulletDamage:      2,
		ShootCooldownMS:   500,
		InvincibilityMS:   1500,
		BulletSpeed:       10.0,
		BulletWidth:       12.0,
		BulletHeight:      12.0,
		AnimationInterval: 120,
		WalkFrames:        4,

		Width:  28.0,
		Height: 30.0,

		BaseStrength: 1,
		BaseDefense:  0,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			KindSentry: {
				Name:           KindSentry,
				Health:         2,
				Score:          500,
				Width:          32.0,
				Height:         32.0,
				Gravity:        0.5,
				DetectionRange: 300.0,
				FireRateMS:     2000,
				BulletSpeedX:   4.0,
				BulletSpreadY:  2.0,
				BulletWidth:    10.0,
				BulletHeight:   10.0,
			},
			KindFlitter: {
				Name:             KindFlitter,
				Health:           1,
				Score:            500,
				Width:            32.0,
				Height:           32.0,
				Gravity:          0, // flies, never falls
				PatrolSpeedX:     2.0,
				PatrolSpeedY:     1.0,
				PatrolAmplitudeX: 96.0,
				PatrolAmplitudeY: 48.0,
			},
			KindGolem: {
				Name:          KindGolem,
				Health:        20,
				Score:         5000,
				Width:         64.0,
				Height:        80.0,
				Gravity:       0.5,
				IdleDwellMS:   2000,
				ThrowWindupMS: 1000,
				AttackRange:   150.0,
				JumpSpeedX:    4.0,
				JumpImpulse:   -14.0,
				RockSpeed:     5.0,
				RockLob:       -6.0,
				RockGravity:   0.3,
				RockDamage:    3,
			},
		},
	}

	Item = ItemConfig{
		Types: map[string]ItemTypeConfig{
			ItemSmallHeal: {Name: ItemSmallHeal, Value: 2, Width: 16, Height: 16},
			ItemBigHeal:   {Name: ItemBigHeal, Value: 6, Width: 24, Height: 24},
			ItemScoreOrb:  {Name: ItemScoreOrb, Value: 100, Width: 16, Height: 16},
		},

		PopVelocity: -6.0,
		Gravity:     0.5,

		BigHealCeiling:   20,
		SmallHealCeiling: 50,
		ScoreCeiling:     75,
	}

	Session = SessionConfig{
		ScoreDigits:      7,
		EnemyKillScore:   500,
		TenKillThreshold: 10,
	}

	UI = UIConfig{
		HealthBarX:      24,
		HealthBarY:      48,
		HealthCellW:     16,
		HealthCellH:     8,
		BossBarWidth:    64,
		BossBarHeight:   5,
		BossBarMargin:   10,
		GameOverFadeSec: 1.5,
	}
}
