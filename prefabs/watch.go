package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce drops repeat notifications for one file; editors tend to
// write a file several times per save.
const reloadDebounce = 100 * time.Millisecond

type ChangeKind uint8

const (
	SceneChanged ChangeKind = iota + 1
	ScriptChanged
)

func (k ChangeKind) String() string {
	switch k {
	case SceneChanged:
		return "scene"
	case ScriptChanged:
		return "script"
	default:
		return "unknown"
	}
}

// Change is one debounced edit to the watched scene or a layout script.
type Change struct {
	Scene string
	Path  string
	Kind  ChangeKind
}

// Watcher reports edits to one scene file and to any layout script. Other
// YAML files in the same directory are ignored.
type Watcher struct {
	watcher *fsnotify.Watcher
	scene   string

	Changes chan Change
	Errors  chan error

	closeCh chan struct{}
	once    sync.Once
}

// WatchScene watches scene under Dir, plus Dir/scripts when it exists.
func WatchScene(scene string) (*Watcher, error) {
	dirs := []string{Dir}
	scripts := filepath.Join(Dir, "scripts")
	if info, err := os.Stat(scripts); err == nil && info.IsDir() {
		dirs = append(dirs, scripts)
	}
	return NewWatcher(scene, dirs...)
}

func NewWatcher(scene string, dirs ...string) (*Watcher, error) {
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
		scene:   cleanPrefabPath(scene),
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Scene is the watched scene name as passed to LoadSceneSpec.
func (w *Watcher) Scene() string {
	return w.scene
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
	defer close(w.Changes)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			change, ok := w.classify(event)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[event.Name]; seen && now.Sub(t) < reloadDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Changes <- change:
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

// classify keeps writes, creates and renames of the watched scene file and
// of tengo scripts.
func (w *Watcher) classify(event fsnotify.Event) (Change, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return Change{}, false
	}
	change := Change{Scene: w.scene, Path: event.Name}
	switch {
	case isScriptFile(event.Name):
		change.Kind = ScriptChanged
	case filepath.Base(event.Name) == filepath.Base(filepath.FromSlash(w.scene)):
		change.Kind = SceneChanged
	default:
		return Change{}, false
	}
	return change, true
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
