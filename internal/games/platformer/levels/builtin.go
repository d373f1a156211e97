package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// builtinLevel couples raw map text with its metadata so the campaign
// can be parsed on demand.
type builtinLevel struct {
	id        string
	name      string
	timeLimit int
	rows      []string
}

var builtinLevels = []builtinLevel{
	{
		id:        "verdant-run",
		name:      "Verdant Run",
		timeLimit: 120,
		rows: []string{
			"                                                                                                ",
			"                                                                                                ",
			"                                                                                                ",
			"                                                                                          G     ",
			"                                   B?B                                                    F     ",
			"                                                                                          F     ",
			"                                                        oo                                F     ",
			"                                  B?B?B                                                   F     ",
			"        ?                                                     ooo                         F     ",
			"                                                                                          F     ",
			"                      T                             T               T                     F     ",
			"  P   .       E       |       E  ooo        E       |               |     E               F     ",
			"########################################################  ####   ###############################",
			"########################################################  ####   ###############################",
		},
	},
	{
		id:        "spike-hollow",
		name:      "Spike Hollow",
		timeLimit: 150,
		rows: []string{
			"                                                                                                                ",
			"                                                                                                                ",
			"                                                                                                                ",
			"                                                                                                                ",
			"                                                                                                                ",
			"                                                                                                                ",
			"                                                                                                        G       ",
			"                                                                                                        F       ",
			"                                                                                                        F       ",
			"                                                                  W         oo                          F       ",
			"                                                      B?B                                               F       ",
			"                                              ooo                                                       F       ",
			"                     T         T           T        T              T                      T             F   S   ",
			"  P       E          |         | ^^^E      |        |       E      |                      |    E        F       ",
			"########################~~~###################   #####################~~~~######################################",
			"########################~~~###################   #####################~~~~######################################",
		},
	},
	{
		id:        "brick-keep",
		name:      "Brick Keep",
		timeLimit: 90,
		rows: []string{
			"                                                                ",
			"                                                                ",
			"                                                                ",
			"B                                                              B",
			"B                                                              B",
			"B                                                              B",
			"B                                                              B",
			"B                                                              B",
			"B                                                              B",
			"B             B?B?B                                            B",
			"B                                                              B",
			"B   P               o o                           X            B",
			"################################################################",
			"################################################################",
		},
	},
}

// LevelCount returns the number of built-in campaign levels.
func LevelCount() int {
	return len(builtinLevels)
}

// GetLevel parses and returns the campaign level at index i, wrapping
// past the end of the pack so endless play can cycle forever. Each call
// returns freshly built data that the caller may mutate.
func GetLevel(i int) (*core.LevelData, error) {
	n := len(builtinLevels)
	idx := ((i % n) + n) % n
	bl := builtinLevels[idx]
	data, err := ParseLevel(bl.id, bl.name, bl.rows, bl.timeLimit)
	if err != nil {
		return nil, fmt.Errorf("builtin level %q: %w", bl.id, err)
	}
	return data, nil
}

// LevelNames returns the display names of the built-in campaign levels
// in play order.
func LevelNames() []string {
	names := make([]string, len(builtinLevels))
	for i, bl := range builtinLevels {
		names[i] = bl.name
	}
	return names
}

// BuiltinLevels parses the whole campaign in order. The built-in maps
// are covered by tests, so an error here is a programming bug.
func BuiltinLevels() ([]*core.LevelData, error) {
	out := make([]*core.LevelData, 0, len(builtinLevels))
	for i := range builtinLevels {
		data, err := GetLevel(i)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}
