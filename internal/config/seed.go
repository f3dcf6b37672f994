package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Seed describes the catalogue loaded into an empty database.
type Seed struct {
	Departments []SeedDepartment `yaml:"departments"`
}

type SeedDepartment struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Products    []SeedProduct `yaml:"products"`
}

type SeedProduct struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LoadSeed reads a seed file. An empty path yields an empty seed.
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		return &Seed{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, d := range s.Departments {
		if d.Name == "" {
			return nil, fmt.Errorf("seed department #%d has no name", i+1)
		}
		for j, p := range d.Products {
			if p.Name == "" {
				return nil, fmt.Errorf("seed product #%d of %q has no name", j+1, d.Name)
			}
		}
	}
	return &s, nil
}
