package assets

import "testing"

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena()
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if arena.Width != 640 || arena.Height != 352 {
		t.Errorf("arena bounds = %dx%d, want 640x352", arena.Width, arena.Height)
	}

	if arena.PlayerSpawn.X == 0 && arena.PlayerSpawn.Y == 0 {
		t.Error("player spawn missing from map")
	}

	if len(arena.CollectibleSpawns) != 8 {
		t.Errorf("got %d collectible spawns, want 8", len(arena.CollectibleSpawns))
	}

	if len(arena.EnemySpawns) != 3 {
		t.Fatalf("got %d enemy spawns, want 3", len(arena.EnemySpawns))
	}

	// Each spawn carries one of the three behaviors
	seen := map[string]bool{}
	for _, spawn := range arena.EnemySpawns {
		seen[spawn.Behavior] = true
	}
	for _, behavior := range []string{"random", "chaser", "patrol"} {
		if !seen[behavior] {
			t.Errorf("no enemy spawn with behavior %q", behavior)
		}
	}
}

func TestLoadArenaSpawnsInsideBounds(t *testing.T) {
	arena, err := LoadArena()
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	inBounds := func(x, y float64) bool {
		return x >= 0 && x < float64(arena.Width) && y >= 0 && y < float64(arena.Height)
	}

	if !inBounds(arena.PlayerSpawn.X, arena.PlayerSpawn.Y) {
		t.Errorf("player spawn (%v, %v) outside arena", arena.PlayerSpawn.X, arena.PlayerSpawn.Y)
	}
	for i, s := range arena.CollectibleSpawns {
		if !inBounds(s.X, s.Y) {
			t.Errorf("collectible spawn %d (%v, %v) outside arena", i, s.X, s.Y)
		}
	}
	for i, s := range arena.EnemySpawns {
		if !inBounds(s.X, s.Y) {
			t.Errorf("enemy spawn %d (%v, %v) outside arena", i, s.X, s.Y)
		}
	}
}
