package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

const DefaultLevel = "level_data.json"

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is the read-only descriptor a scene is built from.
type Level struct {
	World     World      `json:"world"`
	Platforms []Platform `json:"platforms"`
	Fires     []Point    `json:"fires"`
	Goal      Point      `json:"goal"`
	Spawner   Spawner    `json:"spawner"`
}

type World struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Platform is a row of NumTiles copies of the texture Key with its top-left
// corner at X,Y.
type Platform struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Key      string  `json:"key"`
	NumTiles int     `json:"numTiles"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Spawner struct {
	Speed    float64 `json:"speed"`
	Lifespan float64 `json:"lifespan"`
}

// Load reads a level, preferring ./levels on disk over the embedded copy.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join("levels", clean))
	if err != nil {
		return LoadLevelFromFS(clean)
	}
	return Parse(data)
}

// LoadLevelFromFS reads a level from the embedded copy only.
func LoadLevelFromFS(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return Parse(data)
}

// Parse decodes and validates a level descriptor.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.World.Width <= 0 || l.World.Height <= 0 {
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidLevel, l.World.Width, l.World.Height)
	}
	for i, p := range l.Platforms {
		if p.Key == "" {
			return fmt.Errorf("%w: platform %d has no key", ErrInvalidLevel, i)
		}
		if p.NumTiles < 1 {
			return fmt.Errorf("%w: platform %d has %d tiles", ErrInvalidLevel, i, p.NumTiles)
		}
	}
	if l.Spawner.Lifespan < 0 {
		return fmt.Errorf("%w: negative spawner lifespan %v", ErrInvalidLevel, l.Spawner.Lifespan)
	}
	return nil
}

// List returns the names of the embedded levels in sorted order.
func List() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func cleanLevelPath(name string) string {
	if name == "" {
		return DefaultLevel
	}
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
