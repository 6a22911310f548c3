package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherClassify(t *testing.T) {
	w := &Watcher{scene: cleanPrefabPath("prefabs/scene.yaml")}

	cases := []struct {
		name  string
		event fsnotify.Event
		want  ChangeKind
	}{
		{"scene write", fsnotify.Event{Name: "prefabs/scene.yaml", Op: fsnotify.Write}, SceneChanged},
		{"scene create", fsnotify.Event{Name: "prefabs/scene.yaml", Op: fsnotify.Create}, SceneChanged},
		{"script rename", fsnotify.Event{Name: "prefabs/scripts/statics.tengo", Op: fsnotify.Rename}, ScriptChanged},
		{"script upper ext", fsnotify.Event{Name: "prefabs/scripts/X.TENGO", Op: fsnotify.Write}, ScriptChanged},
		{"other scene", fsnotify.Event{Name: "prefabs/other.yaml", Op: fsnotify.Write}},
		{"chmod", fsnotify.Event{Name: "prefabs/scene.yaml", Op: fsnotify.Chmod}},
		{"remove", fsnotify.Event{Name: "prefabs/scene.yaml", Op: fsnotify.Remove}},
		{"other file", fsnotify.Event{Name: "prefabs/notes.txt", Op: fsnotify.Write}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := w.classify(c.event)
			if c.want == 0 {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, Change{Scene: "scene.yaml", Path: c.event.Name, Kind: c.want}, got)
		})
	}
}

func TestWatcherReportsSceneChange(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(DefaultScene, dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	assert.Equal(t, DefaultScene, w.Scene())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.yaml"), []byte("name: y\n"), 0o644))
	path := filepath.Join(dir, DefaultScene)
	require.NoError(t, os.WriteFile(path, []byte("name: x\n"), 0o644))

	select {
	case got := <-w.Changes:
		assert.Equal(t, Change{Scene: DefaultScene, Path: path, Kind: SceneChanged}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no watch event")
	}
}

func TestWatchSceneWithoutScriptsDir(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = old })

	w, err := WatchScene(DefaultScene)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(DefaultScene, t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Changes:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("changes channel not closed")
	}
}
