package leveldata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrEmptyLevel = errors.New("empty level document")

// ParseYAML decodes a single level document. Unknown keys are rejected so a
// typo in a level file fails loudly instead of silently using a default.
func ParseYAML(data []byte) (*Level, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var level Level
	if err := dec.Decode(&level); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyLevel
		}
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return &level, nil
}

// LoadYAML reads and parses a YAML level from fsys.
func LoadYAML(fsys fs.FS, yamlPath string) (*Level, error) {
	data, err := fs.ReadFile(fsys, yamlPath)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", yamlPath, err)
	}
	level, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", yamlPath, err)
	}
	return level, nil
}

// Load picks a loader by file extension.
func Load(fsys fs.FS, levelPath string) (*Level, error) {
	switch strings.ToLower(path.Ext(levelPath)) {
	case ".tmx":
		return LoadTMX(fsys, levelPath)
	case ".yaml", ".yml":
		return LoadYAML(fsys, levelPath)
	}
	return nil, fmt.Errorf("load level %s: unsupported format", levelPath)
}

// LoadAll loads every .tmx and .yaml level in dir, keyed by level number.
// Two files claiming the same number is an error.
func LoadAll(fsys fs.FS, dir string) (map[int]*Level, error) {
	var names []string
	for _, pattern := range []string{"*.tmx", "*.yaml", "*.yml"} {
		matches, err := fs.Glob(fsys, path.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob levels: %w", err)
		}
		names = append(names, matches...)
	}
	sort.Strings(names)

	levels := make(map[int]*Level, len(names))
	sources := make(map[int]string, len(names))
	for _, name := range names {
		level, err := Load(fsys, name)
		if err != nil {
			return nil, err
		}
		if prev, ok := sources[level.Number]; ok {
			return nil, fmt.Errorf("level %d defined by both %s and %s: %w", level.Number, prev, name, ErrDuplicateID)
		}
		levels[level.Number] = level
		sources[level.Number] = name
	}
	return levels, nil
}
