package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/younwookim/locomotion/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for profile files that are neither JSON nor YAML
var ErrUnknownFormat = errors.New("unknown config format")

// profileExts are tried in order when a profile is named without extension
var profileExts = []string{".json", ".yaml", ".yml"}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Profile *entity.ActorProfile
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

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadProfile loads profiles/<name>. name may carry a .json, .yaml or .yml
// extension; without one the extensions are tried in that order.
// Fields missing from the file keep their DefaultProfile values.
func (l *Loader) LoadProfile(name string) (*entity.ActorProfile, error) {
	file, err := l.findProfile(name)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", name, err)
	}

	profile := entity.DefaultProfile()
	profile.Name = strings.TrimSuffix(path.Base(file), path.Ext(file))

	if err := decode(file, data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", name, err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}

// ListProfiles returns the profile names found under profiles/
func (l *Loader) ListProfiles() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "profiles")
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() || !knownExt(path.Ext(e.Name())) {
			continue
		}
		n := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads physics.json and the profile it names.
// A non-empty profile overrides physics.actor.
func (l *Loader) LoadAll(profile string) (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	if profile == "" {
		profile = physics.Actor
	}
	if profile == "" {
		return nil, fmt.Errorf("no actor profile configured")
	}

	actor, err := l.LoadProfile(profile)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Profile: actor,
	}, nil
}

func (l *Loader) findProfile(name string) (string, error) {
	base := path.Join("profiles", name)
	if ext := path.Ext(name); ext != "" {
		if !knownExt(ext) {
			return "", fmt.Errorf("profile %s: %w %q", name, ErrUnknownFormat, ext)
		}
		return base, nil
	}

	for _, ext := range profileExts {
		if _, err := fs.Stat(l.fsys, base+ext); err == nil {
			return base + ext, nil
		}
	}
	return "", fmt.Errorf("failed to find profile %s: %w", name, fs.ErrNotExist)
}

func decode(file string, data []byte, v any) error {
	switch path.Ext(file) {
	case ".json":
		return json.Unmarshal(data, v)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(v)
	default:
		return ErrUnknownFormat
	}
}

func knownExt(ext string) bool {
	for _, e := range profileExts {
		if e == ext {
			return true
		}
	}
	return false
}
