// Package catalog supplies the current pocket options. The core never
// owns pockets; it asks a Provider for a fresh snapshot each turn.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

// Provider returns the active pockets, id plus display name.
type Provider interface {
	Pockets() ([]models.PocketOption, error)
}

// Static is a fixed in-memory catalog, used by tests and as the fallback
// when no pockets file is configured.
type Static struct {
	pockets []models.PocketOption
}

// NewStatic copies the given options into a provider.
func NewStatic(pockets []models.PocketOption) *Static {
	return &Static{pockets: append([]models.PocketOption(nil), pockets...)}
}

// Pockets returns a copy of the catalog.
func (s *Static) Pockets() ([]models.PocketOption, error) {
	return append([]models.PocketOption(nil), s.pockets...), nil
}

// File loads the catalog from a YAML file of the shape:
//
//	pockets:
//	  - id: poc-1
//	    name: Tabungan
//
// The file is re-read on every call so edits show up on the next turn.
type File struct {
	Path string
}

// NewFile returns a file-backed provider.
func NewFile(path string) *File {
	return &File{Path: path}
}

type pocketsFile struct {
	Pockets []models.PocketOption `yaml:"pockets"`
}

// Pockets reads and decodes the configured file.
func (f *File) Pockets() ([]models.PocketOption, error) {
	path, err := resolvePath(f.Path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pockets file: %w", err)
	}
	var doc pocketsFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode pockets file %s: %w", path, err)
	}
	for i, p := range doc.Pockets {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("pockets file %s: entry %d needs both id and name", path, i)
		}
	}
	return doc.Pockets, nil
}

// resolvePath looks for the file in the standard locations: as given, then
// ./config/, then $HOME/.config/dompet/.
func resolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		return "", fmt.Errorf("pockets file %s: %w", path, os.ErrNotExist)
	}

	locations := []string{
		path,
		filepath.Join("config", path),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", "dompet", path))
	}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc, nil
		}
	}
	return "", fmt.Errorf("pockets file %s: %w", path, os.ErrNotExist)
}
