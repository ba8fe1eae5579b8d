package definition

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound reports that no definition file exists at the resolved path.
var ErrNotFound = errors.New("no session definition found")

// LocalDefinition is the fallback definition file in the current directory.
const LocalDefinition = ".session.yaml"

// ConfigDir returns the per-user directory holding named definitions,
// e.g. ~/.config/precession on Linux.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "precession"), nil
}

// Locate resolves the definition file path. Resolution order:
//  1. an explicitly supplied path,
//  2. <config dir>/<session name>.yaml,
//  3. ./.session.yaml.
func Locate(sessionName, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if sessionName != "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, sessionName+".yaml"), nil
	}
	return LocalDefinition, nil
}

// Load reads, decodes and validates the definition at path. A missing file
// is reported as ErrNotFound; everything else surfaces as ErrMalformed or
// a plain read error.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read definition %s: %w", path, err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Entry pairs a definition name with the file it was found in.
type Entry struct {
	Name string
	Path string
}

// List returns the definitions available in dir, sorted by name.
// A missing directory is an empty list, not an error.
func List(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read definitions dir %s: %w", dir, err)
	}
	var defs []Entry
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		defs = append(defs, Entry{
			Name: strings.TrimSuffix(e.Name(), ext),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}
