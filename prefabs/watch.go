package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind says what sort of preset file changed.
type ChangeKind int

const (
	ChangeSpec ChangeKind = iota + 1
	ChangeScript
)

// Change is a debounced file event for a preset or curve script.
type Change struct {
	Path string
	Kind ChangeKind
}

// debounce drops repeat events for the same file inside this window; editors
// tend to write a file several times per save.
const debounce = 100 * time.Millisecond

// Watcher reports edits to preset and curve script files.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs, typically Dir and its scripts subdirectory.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			kind := classify(event.Name)
			if kind == 0 {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- Change{Path: event.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) ChangeKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeSpec
	case ".tengo":
		return ChangeScript
	default:
		return 0
	}
}

// Affects reports whether c should trigger a reload of l. Script edits always
// do, since any preset may reference the script.
func (l *Library) Affects(c Change) bool {
	switch c.Kind {
	case ChangeScript:
		return true
	case ChangeSpec:
		return filepath.Base(c.Path) == filepath.Base(cleanPrefabPath(l.file))
	default:
		return false
	}
}
