package style

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Archive is the top-level structure for export/import of the user style
// directory as a single file.
type Archive struct {
	Version   string            `json:"version"`
	CreatedAt string            `json:"created_at"`
	Styles    map[string]string `json:"styles"` // name -> raw YAML definition
}

const archiveVersion = "1.0.0"

// ExportUserStyles writes every style in the user style directory into a
// single JSON archive at the specified path.
func ExportUserStyles(exportPath string) error {
	names, err := UserStyles()
	if err != nil {
		return err
	}

	archive := Archive{
		Version:   archiveVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Styles:    make(map[string]string, len(names)),
	}
	for _, name := range names {
		data, err := readUserStyle(name)
		if err != nil {
			return fmt.Errorf("failed to read style %q: %w", name, err)
		}
		archive.Styles[name] = string(data)
	}

	data, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal style archive: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(exportPath), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write style archive: %w", err)
	}
	return nil
}

// ImportUserStyles reads a style archive and installs each contained style
// into the user style directory, validating every definition before any is
// written. Returns the installed style names, sorted.
func ImportUserStyles(importPath string) ([]string, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read style archive: %w", err)
	}
	var archive Archive
	if err := json.Unmarshal(data, &archive); err != nil {
		return nil, fmt.Errorf("failed to parse style archive: %w", err)
	}
	if archive.Version == "" {
		return nil, fmt.Errorf("invalid style archive: missing version field")
	}

	names := make([]string, 0, len(archive.Styles))
	for name, def := range archive.Styles {
		if _, err := parse(name, []byte(def)); err != nil {
			return nil, fmt.Errorf("style %q in archive: %w", name, err)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := SaveUserStyle(name, []byte(archive.Styles[name])); err != nil {
			return nil, err
		}
	}
	return names, nil
}
