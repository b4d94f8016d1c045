package profiles

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/planwright/internal/errors"
)

//go:embed builtin/*.yaml
var builtinProfiles embed.FS

// Loader resolves gate profiles by name.
//
// Resolution order (highest to lowest precedence):
//  1. Project-level file (<project>/.planwright/profiles/<name>.yaml),
//     layered over the built-in of the same name when one exists
//  2. Built-in profile embedded in the binary
type Loader struct {
	projectDir string
	cache      map[string]*Profile
}

// NewLoader creates a loader rooted at the current directory.
func NewLoader() *Loader {
	return &Loader{
		projectDir: ".",
		cache:      make(map[string]*Profile),
	}
}

// SetProjectDir points the loader at a different project root.
func (l *Loader) SetProjectDir(dir string) {
	l.projectDir = dir
}

// Load resolves a profile by name. Unknown names are an error, never
// a silent fallback.
func (l *Loader) Load(name string) (*Profile, error) {
	cacheKey := l.projectDir + ":" + name
	if cached, ok := l.cache[cacheKey]; ok {
		return cached, nil
	}

	base, builtinErr := l.loadBuiltin(name)

	if project, err := l.loadProject(name); err == nil {
		if base != nil {
			base = base.Merge(project)
		} else {
			base = project
		}
	}

	if base == nil {
		return nil, errors.NewGateProfileUnknownError(name).
			WithSuggestion(fmt.Sprintf("no built-in or project profile named %q (built-in lookup: %v)", name, builtinErr))
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}

	l.cache[cacheKey] = base
	return base, nil
}

func (l *Loader) loadBuiltin(name string) (*Profile, error) {
	data, err := builtinProfiles.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, err
	}
	return parseProfile(data, name)
}

func (l *Loader) loadProject(name string) (*Profile, error) {
	path := filepath.Join(l.projectDir, ".planwright", "profiles", name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseProfile(data, name)
}

func parseProfile(data []byte, name string) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGateProfileInvalid,
			fmt.Sprintf("parse profile %q", name), err)
	}
	if p.Name == "" {
		p.Name = name
	}
	return &p, nil
}
