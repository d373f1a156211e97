package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]*core.LevelData, error) {
	var out []*core.LevelData

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}
		data, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		out = append(out, data)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(out, func(i, j int) bool {
		return out[i].Level.ID < out[j].Level.ID
	})
	return out, nil
}

// LoadFile loads a single level file. A file without an id falls back
// to its base name minus the extension.
func (l *Loader) LoadFile(path string) (*core.LevelData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	yl, err := parseByExtension(raw, ext)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	id := yl.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	name := yl.Name
	if name == "" {
		name = id
	}

	data, err := ParseLevel(id, name, yl.Rows, yl.TimeLimit)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return data, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (*core.LevelData, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, data := range all {
		if data.Level.ID == id {
			return data, nil
		}
	}
	return nil, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, data := range all {
		ids[i] = data.Level.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.YAMLLevel, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.YAMLLevel{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
