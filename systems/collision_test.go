package systems

import (
	"math/rand"
	"testing"

	"github.com/grimhold/rockbuster/archetypes"
	"github.com/grimhold/rockbuster/components"
	cfg "github.com/grimhold/rockbuster/config"
	"github.com/grimhold/rockbuster/shared/gameclock"
	"github.com/grimhold/rockbuster/shared/leveldata"
	"github.com/grimhold/rockbuster/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newSimWorld builds a headless world with a session on a manual clock,
// a collision space, and an empty level of the given pixel size.
func newSimWorld(levelWidth, levelHeight int) (*ecs.ECS, *gameclock.Manual) {
	e := ecs.NewECS(donburi.NewWorld())

	clock := gameclock.NewManual()
	// Timers treat zero as "never", so start the clock past it.
	clock.Set(1)
	factory.CreateSession(e, clock, rand.New(rand.NewSource(1)))
	factory.CreateSpace(e, levelWidth, levelHeight, cfg.C.TileSize, cfg.C.TileSize)

	level := &leveldata.Level{Name: "test", Width: levelWidth, Height: levelHeight}
	entry := archetypes.Level.Spawn(e)
	components.Level.SetValue(entry, components.LevelData{Current: level})

	return e, clock
}

func TestDescendingBodySnapsToTileTop(t *testing.T) {
	e, _ := newSimWorld(640, 480)
	factory.CreateSolidTile(e, 64, 200, 96, 32)
	player := factory.CreatePlayer(e, 100, 160)

	physics := components.Physics.Get(player)
	physics.SpeedY = 15

	UpdateCollisions(e)

	obj := components.Object.Get(player)
	wantY := 200 - cfg.Player.Height
	if obj.Y != wantY {
		t.Errorf("player Y = %v, want %v", obj.Y, wantY)
	}
	if physics.OnGround == nil {
		t.Error("player is not grounded after landing")
	}
	if physics.SpeedY != 0 {
		t.Errorf("vertical speed = %v after landing, want 0", physics.SpeedY)
	}
}

func TestLandingOnSeamOfTwoTilesSnapsOnce(t *testing.T) {
	e, _ := newSimWorld(640, 480)
	// Two solids sharing a top edge; the body straddles the seam.
	factory.CreateSolidTile(e, 64, 200, 96, 32)
	factory.CreateSolidTile(e, 160, 200, 96, 32)
	player := factory.CreatePlayer(e, 150, 160)

	physics := components.Physics.Get(player)
	physics.SpeedY = 15

	UpdateCollisions(e)

	obj := components.Object.Get(player)
	wantY := 200 - cfg.Player.Height
	if obj.Y != wantY {
		t.Errorf("player Y = %v over two tiles, want %v", obj.Y, wantY)
	}
	if physics.OnGround == nil {
		t.Error("player is not grounded after landing")
	}
	if physics.SpeedY != 0 {
		t.Errorf("vertical speed = %v after landing, want 0", physics.SpeedY)
	}
}

func TestAscendingBodySnapsToTileBottom(t *testing.T) {
	e, _ := newSimWorld(640, 480)
	factory.CreateSolidTile(e, 64, 100, 96, 32)
	player := factory.CreatePlayer(e, 100, 140)

	physics := components.Physics.Get(player)
	physics.SpeedY = -12

	UpdateCollisions(e)

	obj := components.Object.Get(player)
	if obj.Y != 132 {
		t.Errorf("player Y = %v, want 132 (tile bottom)", obj.Y)
	}
	if physics.SpeedY != 0 {
		t.Errorf("vertical speed = %v after head bump, want 0", physics.SpeedY)
	}
	if physics.OnGround != nil {
		t.Error("ceiling contact must not count as ground")
	}
}

func TestRestingBodyStaysGrounded(t *testing.T) {
	e, _ := newSimWorld(640, 480)
	factory.CreateSolidTile(e, 64, 200, 96, 32)
	player := factory.CreatePlayer(e, 100, 160)
	components.Physics.Get(player).SpeedY = 15

	// Land, then keep simulating with gravity only.
	UpdateCollisions(e)
	for i := 0; i < 5; i++ {
		UpdatePhysics(e)
		UpdateCollisions(e)
	}

	physics := components.Physics.Get(player)
	obj := components.Object.Get(player)
	if physics.OnGround == nil {
		t.Error("resting player lost ground contact")
	}
	if wantY := 200 - cfg.Player.Height; obj.Y != wantY {
		t.Errorf("resting player Y = %v, want %v", obj.Y, wantY)
	}
}

func TestIgnoresTilesPassesThroughSolids(t *testing.T) {
	e, _ := newSimWorld(640, 480)
	factory.CreateSolidTile(e, 64, 200, 96, 32)
	flitter := factory.CreateEnemy(e, 100, 160, cfg.KindFlitter)

	physics := components.Physics.Get(flitter)
	if !physics.IgnoresTiles {
		t.Fatal("flitter should ignore tiles")
	}
	physics.SpeedY = 15

	UpdateCollisions(e)

	obj := components.Object.Get(flitter)
	if obj.Y != 175 {
		t.Errorf("flitter Y = %v, want 175 (moved through the tile)", obj.Y)
	}
	if physics.OnGround != nil {
		t.Error("flitter must never be grounded")
	}
}

func TestItemLandsOnceAndStopsFalling(t *testing.T) {
	e, _ := newSimWorld(640, 480)
	factory.CreateSolidTile(e, 0, 200, 640, 32)
	itemEntry := factory.CreateItem(e, 100, 150, cfg.ItemSmallHeal)

	for i := 0; i < 120; i++ {
		UpdatePhysics(e)
		UpdateCollisions(e)
	}

	item := components.Item.Get(itemEntry)
	physics := components.Physics.Get(itemEntry)
	obj := components.Object.Get(itemEntry)

	if !item.Landed {
		t.Fatal("item never landed")
	}
	if physics.Gravity != 0 {
		t.Errorf("landed item still has gravity %v", physics.Gravity)
	}
	wantY := 200 - cfg.Item.Types[cfg.ItemSmallHeal].Height
	if obj.Y != wantY {
		t.Errorf("item Y = %v, want %v (resting on the tile)", obj.Y, wantY)
	}
}

func TestThrownRockShattersOnLanding(t *testing.T) {
	e, _ := newSimWorld(640, 480)
	factory.CreateSolidTile(e, 0, 300, 640, 32)
	golemType := cfg.Enemy.Types[cfg.KindGolem]
	rock := factory.CreateRock(e, 100, 100, cfg.DirectionRight, &golemType)

	consumed := false
	for i := 0; i < 300; i++ {
		UpdatePhysics(e)
		UpdateCollisions(e)
		if rock.HasComponent(components.Consumed) {
			consumed = true
			break
		}
	}

	if !consumed {
		t.Fatal("rock never shattered on the ground")
	}
}

func TestPlayerClampedToLevelBounds(t *testing.T) {
	e, _ := newSimWorld(320, 480)
	player := factory.CreatePlayer(e, 5, 100)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player)

	physics.SpeedX = -20
	UpdateCollisions(e)
	if obj.X != 0 {
		t.Errorf("left clamp: X = %v, want 0", obj.X)
	}

	obj.X = 280
	physics.SpeedX = 40
	UpdateCollisions(e)
	if wantX := 320 - cfg.Player.Width; obj.X != wantX {
		t.Errorf("right clamp: X = %v, want %v", obj.X, wantX)
	}
}
