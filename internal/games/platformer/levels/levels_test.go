package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

func TestParseLevelScansMarkers(t *testing.T) {
	rows := []string{
		"X          ",
		"   ?  o    ",
		"P  E  W  S ",
		"###########",
	}
	data, err := ParseLevel("t1", "Test One", rows, 90)
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}

	lv := data.Level
	if lv.Width != 11 || lv.Height != 4 {
		t.Errorf("expected 11x4, got %dx%d", lv.Width, lv.Height)
	}
	if lv.TimeLimit != 90 {
		t.Errorf("expected time limit 90, got %d", lv.TimeLimit)
	}

	if data.Spawn != (core.Vec{X: 0, Y: 2}) {
		t.Errorf("expected spawn at (0,2), got %+v", data.Spawn)
	}
	if len(data.Enemies) != 1 || data.Enemies[0] != (core.Vec{X: 3, Y: 2}) {
		t.Errorf("expected one enemy at (3,2), got %+v", data.Enemies)
	}

	if len(data.Spawners) != 2 {
		t.Fatalf("expected two spawners, got %d", len(data.Spawners))
	}
	if data.Spawners[0].Pattern != core.PatternWave || data.Spawners[0].Pos != (core.Vec{X: 6, Y: 2}) {
		t.Errorf("expected a wave spawner at (6,2), got %+v", data.Spawners[0])
	}
	if data.Spawners[1].Pattern != core.PatternLinear || data.Spawners[1].Pos != (core.Vec{X: 9, Y: 2}) {
		t.Errorf("expected a linear spawner at (9,2), got %+v", data.Spawners[1])
	}
	if data.Spawners[0].Dir != core.FacingLeft {
		t.Error("expected spawners to fire leftward")
	}

	// The boss marker names the bottom-left tile; the body extends up.
	if data.Boss == nil || *data.Boss != (core.Vec{X: 0, Y: -1}) {
		t.Errorf("expected boss at (0,-1), got %+v", data.Boss)
	}

	// Marker cells read as air in the grid.
	for _, p := range []core.TilePos{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 2}, {X: 6, Y: 2}, {X: 9, Y: 2}} {
		if lv.Grid[p.Y][p.X] != core.TileEmpty {
			t.Errorf("expected marker cell (%d,%d) empty, got %v", p.X, p.Y, lv.Grid[p.Y][p.X])
		}
	}
	if lv.Grid[1][3] != core.TileQuestion {
		t.Error("expected a question block at (3,1)")
	}
	if lv.Grid[1][6] != core.TileCoin {
		t.Error("expected a coin at (6,1)")
	}
	if lv.Grid[3][0] != core.TileGround {
		t.Error("expected ground on the bottom row")
	}
}

func TestParseLevelValidation(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		code string
	}{
		{"no rows", nil, "EMPTY_LEVEL"},
		{"empty rows", []string{""}, "EMPTY_LEVEL"},
		{"ragged rows", []string{"P ", "###"}, "RAGGED_ROWS"},
		{"unknown tile", []string{"P@"}, "BAD_TILE"},
		{"no spawn", []string{"##"}, "NO_SPAWN"},
		{"multiple spawns", []string{"PP"}, "MULTIPLE_SPAWNS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLevel("x", "X", tc.rows, 0)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected a ValidationError, got %T", err)
			}
			if ve.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, ve.Code)
			}
		})
	}
}

func TestBuiltinPackParses(t *testing.T) {
	all, err := BuiltinLevels()
	if err != nil {
		t.Fatalf("BuiltinLevels failed: %v", err)
	}
	if len(all) != LevelCount() {
		t.Fatalf("expected %d levels, got %d", LevelCount(), len(all))
	}

	for i, data := range all {
		lv := data.Level
		if lv.ID == "" || lv.Name == "" {
			t.Errorf("level %d has empty metadata", i)
		}
		if lv.TimeLimit <= 0 {
			t.Errorf("level %q has no time limit", lv.ID)
		}

		// Every level must be winnable: a flag to touch or a boss to kill.
		hasGoal := false
		for y := 0; y < lv.Height; y++ {
			for x := 0; x < lv.Width; x++ {
				if lv.Grid[y][x].Goal() {
					hasGoal = true
				}
			}
		}
		if !hasGoal && data.Boss == nil {
			t.Errorf("level %q has neither flag nor boss", lv.ID)
		}
	}

	if all[0].Level.ID != "verdant-run" {
		t.Errorf("expected the campaign to open with verdant-run, got %q", all[0].Level.ID)
	}
	if all[len(all)-1].Boss == nil {
		t.Error("expected the final level to hold the boss")
	}
}

func TestGetLevelWraps(t *testing.T) {
	first, err := GetLevel(0)
	if err != nil {
		t.Fatalf("GetLevel(0) failed: %v", err)
	}
	wrapped, err := GetLevel(LevelCount())
	if err != nil {
		t.Fatalf("GetLevel(%d) failed: %v", LevelCount(), err)
	}
	if first.Level.ID != wrapped.Level.ID {
		t.Errorf("expected index %d to wrap to the first level, got %q", LevelCount(), wrapped.Level.ID)
	}

	last, err := GetLevel(-1)
	if err != nil {
		t.Fatalf("GetLevel(-1) failed: %v", err)
	}
	if last.Level.ID != "brick-keep" {
		t.Errorf("expected -1 to wrap to the last level, got %q", last.Level.ID)
	}

	// Each call returns fresh data the caller may mutate.
	first.Level.Grid[first.Level.Height-1][0] = core.TileEmpty
	again, err := GetLevel(0)
	if err != nil {
		t.Fatalf("GetLevel(0) failed: %v", err)
	}
	if again.Level.Grid[again.Level.Height-1][0] != core.TileGround {
		t.Error("expected GetLevel to return pristine data each call")
	}
}

func TestLevelNames(t *testing.T) {
	names := LevelNames()
	want := []string{"Verdant Run", "Spike Hollow", "Brick Keep"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, n := range names {
		if n != want[i] {
			t.Errorf("expected name %q at %d, got %q", want[i], i, n)
		}
	}
}

func TestLoaderLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b-second.yaml": "id: b-second\nname: Second\ntime_limit: 60\nrows:\n  - \"P  \"\n  - \"###\"\n",
		"a-first.yml":   "id: a-first\nname: First\nrows:\n  - \"P \"\n  - \"##\"\n",
		"broken.yaml":   "rows:\n  - \"@@\"\n",
		"notes.txt":     "not a level\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	loader := NewLoader(dir)
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 levels (broken and non-level files skipped), got %d", len(all))
	}
	if all[0].Level.ID != "a-first" || all[1].Level.ID != "b-second" {
		t.Errorf("expected levels sorted by ID, got %q, %q", all[0].Level.ID, all[1].Level.ID)
	}

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a-first" || ids[1] != "b-second" {
		t.Errorf("unexpected IDs: %v", ids)
	}

	data, err := loader.LoadByID("b-second")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if data.Level.Name != "Second" || data.Level.TimeLimit != 60 {
		t.Errorf("unexpected metadata: %q, %d", data.Level.Name, data.Level.TimeLimit)
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected an error for an unknown ID")
	}
}

func TestLoaderIDFallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	content := "rows:\n  - \"P \"\n  - \"##\"\n"
	path := filepath.Join(dir, "cavern.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loader := NewLoader(dir)
	data, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if data.Level.ID != "cavern" {
		t.Errorf("expected the ID to fall back to the file name, got %q", data.Level.ID)
	}
	if data.Level.Name != "cavern" {
		t.Errorf("expected the name to fall back to the ID, got %q", data.Level.Name)
	}
}
