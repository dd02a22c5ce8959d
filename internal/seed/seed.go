package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/swimlane/internal/model"
)

// File-backed seed rows. Read once at startup, never written.

const dataFileName = "clients.yaml"

func dataPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, dataFileName), nil
}

// Resolve returns the rows for path. An empty path looks for clients.yaml in
// the working directory and falls back to the built-in rows when there is
// none. An explicit path that does not exist is an error.
func Resolve(path string) ([]model.SeedRow, string, error) {
	if path != "" {
		rows, err := Load(path)
		return rows, path, err
	}
	p, err := dataPath()
	if err != nil {
		return nil, "", err
	}
	rows, err := Load(p)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), "built-in", nil
	}
	return rows, p, err
}

// Load reads seed rows from a YAML or JSON file, picked by extension.
func Load(path string) ([]model.SeedRow, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var rows []row
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(b, &rows); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &rows); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	out := make([]model.SeedRow, len(rows))
	for i, r := range rows {
		out[i] = model.SeedRow(r)
	}
	return out, nil
}

// row decodes either a positional tuple [id, name, description, lane?] or a
// mapping with the same keys.
type row model.SeedRow

type rowFields struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Lane        string `json:"lane" yaml:"lane"`
}

func fromTuple(t []string) (row, error) {
	if len(t) > 4 {
		return row{}, fmt.Errorf("tuple has %d fields, want at most 4", len(t))
	}
	var f [4]string
	copy(f[:], t)
	return row{ID: f[0], Name: f[1], Description: f[2], Lane: f[3]}, nil
}

func (r *row) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		var t []string
		if err := n.Decode(&t); err != nil {
			return err
		}
		v, err := fromTuple(t)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*r = v
		return nil
	}
	var f rowFields
	if err := n.Decode(&f); err != nil {
		return err
	}
	*r = row(f)
	return nil
}

func (r *row) UnmarshalJSON(b []byte) error {
	if trimmed := strings.TrimSpace(string(b)); strings.HasPrefix(trimmed, "[") {
		var t []string
		if err := json.Unmarshal(b, &t); err != nil {
			return err
		}
		v, err := fromTuple(t)
		if err != nil {
			return err
		}
		*r = v
		return nil
	}
	var f rowFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*r = row(f)
	return nil
}
