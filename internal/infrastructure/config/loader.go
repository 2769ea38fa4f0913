package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Engine *EngineConfig
	Scenes []*SceneConfig
}

// Loader loads configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadEngine loads engine.json
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	data, err := fs.ReadFile(l.fsys, "engine.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read engine.json: %w", err)
	}

	var cfg EngineConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine.json: %w", err)
	}

	return &cfg, nil
}

// LoadScene loads a scene YAML file
func (l *Loader) LoadScene(name string) (*SceneConfig, error) {
	path := "scenes/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
	}

	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}

	return &cfg, nil
}

// LoadAll loads engine.json and every scene it lists
func (l *Loader) LoadAll() (*GameConfig, error) {
	engine, err := l.LoadEngine()
	if err != nil {
		return nil, err
	}

	scenes := make([]*SceneConfig, 0, len(engine.Scenes))
	for _, name := range engine.Scenes {
		sc, err := l.LoadScene(name)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, sc)
	}

	return &GameConfig{
		Engine: engine,
		Scenes: scenes,
	}, nil
}
