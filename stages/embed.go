package stages

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var StagesFS embed.FS

// DefaultSpec is the embedded spec used when no stage file is given.
const DefaultSpec = "default.yaml"

// Load reads a stage spec. A path that exists on disk wins, then
// stages/<name>, then the embedded copy.
func Load(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := cleanStagePath(name)
	if data, err := os.ReadFile(diskStagePath(clean)); err == nil {
		return data, nil
	}
	return StagesFS.ReadFile(clean)
}

// LoadScript reads a build script, disk first, falling back to the
// embedded scripts.
func LoadScript(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskStagePath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanStagePath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "stages/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "stages/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "stages/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskStagePath(clean string) string {
	return filepath.Join("stages", filepath.FromSlash(clean))
}
