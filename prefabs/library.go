package prefabs

import (
	"fmt"
	"log"
	"slices"
	"sync"
	"time"
)

// DefaultOverrideFile is the embedded preset file.
const DefaultOverrideFile = "overrides.yaml"

// Library is a named set of presets loaded from one file. It is safe to read
// while another goroutine reloads it.
type Library struct {
	file string

	mu      sync.RWMutex
	presets map[string]Preset
	modTime time.Time
	onDisk  bool
}

// LoadLibrary loads every preset in file.
func LoadLibrary(file string) (*Library, error) {
	lib := &Library{file: file}
	if err := lib.Reload(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Reload re-reads the library's file. On error the previous presets stay.
func (l *Library) Reload() error {
	mod, onDisk := ModTime(l.file)
	spec, err := LoadOverrideFile(l.file)
	if err != nil {
		return err
	}
	presets, err := buildPresets(spec)
	if err != nil {
		return fmt.Errorf("prefabs: %s: %w", l.file, err)
	}

	l.mu.Lock()
	l.presets = presets
	l.modTime, l.onDisk = mod, onDisk
	l.mu.Unlock()
	log.Printf("prefabs: loaded %d override preset(s) from %s", len(presets), l.file)
	return nil
}

// Stale reports whether the file on disk differs from the one last loaded.
// Editors often write a file more than once per save.
func (l *Library) Stale() bool {
	mod, onDisk := ModTime(l.file)
	l.mu.RLock()
	defer l.mu.RUnlock()
	return onDisk != l.onDisk || !mod.Equal(l.modTime)
}

func buildPresets(spec *OverrideFile) (map[string]Preset, error) {
	presets := make(map[string]Preset, len(spec.Overrides))
	for i, o := range spec.Overrides {
		p, err := BuildPreset(o)
		if err != nil {
			return nil, fmt.Errorf("override %d: %w", i, err)
		}
		if _, dup := presets[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		presets[p.Name] = p
	}
	return presets, nil
}

// File is the preset file this library reads.
func (l *Library) File() string {
	return l.file
}

// Get returns the preset called name.
func (l *Library) Get(name string) (Preset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownOverride, name)
	}
	return p, nil
}

// Names lists preset names, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.presets))
	for name := range l.presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
