package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is the on-disk directory whose files shadow the embedded ones, so a
// scene can be edited without rebuilding.
var Dir = "prefabs"

// Load returns the named prefab, preferring the copy under Dir.
func Load(name string) ([]byte, error) {
	return readShadowed(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript returns the named layout script, preferring the copy under Dir.
func LoadScript(name string) ([]byte, error) {
	return readShadowed(ScriptsFS, cleanScriptPath(name))
}

// ModTime reports when the on-disk copy of a prefab last changed.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPrefabPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func readShadowed(fsys embed.FS, clean string) ([]byte, error) {
	if clean == "" {
		return nil, fmt.Errorf("prefabs: empty name")
	}
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	data, err := fsys.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", clean, err)
	}
	return data, nil
}

func cleanPrefabPath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "prefabs/")
}

func cleanScriptPath(path string) string {
	s := strings.TrimPrefix(cleanPrefabPath(path), "scripts/")
	if s == "" {
		return ""
	}
	return "scripts/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
