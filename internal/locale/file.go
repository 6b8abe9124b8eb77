package locale

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefinitionFile is the on-disk form of a custom locale.
type DefinitionFile struct {
	ID         string `toml:"id"`
	Definition `toml:"names"`
}

// LoadDefinition reads a locale definition from a TOML file:
//
//	id = "x-pirate"
//	[names]
//	months = ["Jan", ...]
//	weekdays = ["Sunday", ...]
func LoadDefinition(path string) (DefinitionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefinitionFile{}, fmt.Errorf("reading locale file: %w", err)
	}

	var f DefinitionFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return DefinitionFile{}, fmt.Errorf("parsing locale file: %w", err)
	}
	if f.ID == "" {
		return DefinitionFile{}, fmt.Errorf("locale file %s: %w", path, ErrEmptyLocaleID)
	}
	if _, err := f.Definition.normalize(); err != nil {
		return DefinitionFile{}, fmt.Errorf("locale file %s: %w", path, err)
	}
	return f, nil
}

// RegisterFile loads path and registers it in r, returning the locale id.
func (r *Registry) RegisterFile(path string) (string, error) {
	f, err := LoadDefinition(path)
	if err != nil {
		return "", err
	}
	if err := r.Register(f.ID, f.Definition); err != nil {
		return "", err
	}
	return CanonicalID(f.ID), nil
}
