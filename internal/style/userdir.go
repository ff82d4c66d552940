package style

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// UserStylesDir returns the directory scanned for user-defined styles.
func UserStylesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "figlayout", "styles"), nil
}

// UserStyles returns the names of styles found in the user style directory,
// sorted. A missing directory is not an error; it simply yields no styles.
func UserStyles() ([]string, error) {
	dir, err := UserStylesDir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !isYAMLPath(e.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names, nil
}

// SaveUserStyle writes a raw YAML style definition into the user style
// directory under the given name, creating the directory as needed. The
// definition is validated first so a broken file is never installed.
func SaveUserStyle(name string, data []byte) error {
	if _, err := parse(name, data); err != nil {
		return err
	}
	dir, err := UserStylesDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create style directory: %w", err)
	}
	path := filepath.Join(dir, name+".yml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write style %q: %w", name, err)
	}
	return nil
}

// readUserStyle reads a named style from the user style directory.
func readUserStyle(name string) ([]byte, error) {
	dir, err := UserStylesDir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, name+".yml"))
	if err == nil {
		return data, nil
	}
	return os.ReadFile(filepath.Join(dir, name+".yaml"))
}
