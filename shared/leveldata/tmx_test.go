package leveldata

import (
	"testing"
	"testing/fstest"
)

const miniTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" name="terrain" tilewidth="32" tileheight="32" tilecount="8" columns="8">
  <image source="terrain.png" width="256" height="32"/>
 </tileset>
 <layer id="1" name="solid" width="3" height="2">
  <data encoding="csv">
0,0,0,
1,1,1
</data>
 </layer>
 <layer id="2" name="hazard" width="3" height="2">
  <data encoding="csv">
0,2,0,
0,0,0
</data>
 </layer>
 <objectgroup id="3" name="EnemySpawns">
  <object id="1" x="64" y="0">
   <properties>
    <property name="kind" value="sentry"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="2" x="0" y="16"/>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"mini.tmx": &fstest.MapFile{Data: []byte(miniTMX)},
	}

	level, err := LoadTMX(fsys, "mini.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}

	if level.Name != "mini" {
		t.Errorf("name = %q, want mini", level.Name)
	}
	if level.Width != 96 || level.Height != 64 {
		t.Errorf("size = %dx%d, want 96x64", level.Width, level.Height)
	}

	if len(level.Solids) != 3 {
		t.Errorf("solids = %d, want 3", len(level.Solids))
	}
	if len(level.Hazards) != 1 {
		t.Fatalf("hazards = %d, want 1", len(level.Hazards))
	}
	if h := level.Hazards[0]; h.X != 32 || h.Y != 0 {
		t.Errorf("hazard at (%v, %v), want (32, 0)", h.X, h.Y)
	}

	if len(level.EnemySpawns) != 1 {
		t.Fatalf("enemy spawns = %d, want 1", len(level.EnemySpawns))
	}
	if s := level.EnemySpawns[0]; s.Kind != "sentry" || s.X != 64 || s.Y != 0 {
		t.Errorf("spawn = %+v, want sentry at (64, 0)", s)
	}

	if !level.HasPlayer || level.PlayerX != 0 || level.PlayerY != 16 {
		t.Errorf("player spawn = (%v, %v) present=%v, want (0, 16) present",
			level.PlayerX, level.PlayerY, level.HasPlayer)
	}
}

func TestLoadTMXMissingFile(t *testing.T) {
	if _, err := LoadTMX(fstest.MapFS{}, "absent.tmx"); err == nil {
		t.Error("missing file did not error")
	}
}
