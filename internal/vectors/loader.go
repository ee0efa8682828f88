package vectors

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseSuite parses a vector suite from YAML bytes.
func ParseSuite(data []byte) (*Suite, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	var s Suite
	if err := node.Decode(&s); err != nil {
		return nil, &LoadError{
			Message: "failed to decode suite",
			Cause:   err,
		}
	}

	if s.Name == "" {
		return nil, &LoadError{
			Message: "suite name is required",
		}
	}
	if len(s.Vectors) == 0 {
		return nil, &LoadError{
			Message: "suite must have at least one vector",
		}
	}

	lines := vectorLines(&node)
	seen := make(map[string]bool, len(s.Vectors))
	for i := range s.Vectors {
		line := 0
		if i < len(lines) {
			line = lines[i]
		}
		if err := validateVector(&s.Vectors[i]); err != nil {
			return nil, &LoadError{Line: line, Message: err.Error()}
		}
		if seen[s.Vectors[i].ID] {
			return nil, &LoadError{Line: line, Message: "duplicate vector ID " + s.Vectors[i].ID}
		}
		seen[s.Vectors[i].ID] = true
	}

	return &s, nil
}

// vectorLines returns the source line of each vector entry.
func vectorLines(doc *yaml.Node) []int {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "vectors" {
			continue
		}
		var lines []int
		for _, item := range root.Content[i+1].Content {
			lines = append(lines, item.Line)
		}
		return lines
	}
	return nil
}

func validateVector(v *Vector) error {
	if v.ID == "" {
		return errors.New("vector ID is required")
	}
	if v.Hex == "" {
		return fmt.Errorf("vector %s: hex input is required", v.ID)
	}
	if _, err := v.Input(); err != nil {
		return fmt.Errorf("vector %s: invalid hex: %w", v.ID, err)
	}
	if (v.Expect == nil) == (v.Error == "") {
		return fmt.Errorf("vector %s: exactly one of expect or error is required", v.ID)
	}
	return nil
}

// LoadFile loads a vector suite from a file.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	s, err := ParseSuite(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	s.File = path
	return s, nil
}

// LoadDirectory loads all suites from a directory.
// Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Suite, error) {
	var suites []*Suite

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		s, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		suites = append(suites, s)
	}

	return suites, nil
}
