package config

import (
	"os"
	"path/filepath"

	"solar-profit/internal/analysis"
	"solar-profit/internal/model"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scenarios is a base plant plus named variations to compare.
type Scenarios struct {
	ScenarioFile string
	Base         model.Inputs
	Variations   []analysis.Variation
}

type scenariosFile struct {
	// Optional: load the base from another YAML (e.g. examples/plants/*.yaml).
	// Fields set in Base override the file, including explicit zeros.
	ScenarioFile string               `yaml:"scenario_file"`
	Base         model.Overrides      `yaml:"base"`
	Variations   []analysis.Variation `yaml:"variations"`
}

func LoadScenarios(path string) (*Scenarios, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenarios %s", path)
	}
	var f scenariosFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "parse scenarios %s", path)
	}
	s := Scenarios{ScenarioFile: f.ScenarioFile, Variations: f.Variations}
	var loaded model.Inputs
	if s.ScenarioFile != "" {
		basePath := s.ScenarioFile
		if !filepath.IsAbs(basePath) {
			// Prefer paths relative to the scenarios file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), basePath)
			if _, err := os.Stat(cand); err == nil {
				basePath = cand
			}
		}
		loaded, err = loadBaseFile(basePath)
		if err != nil {
			return nil, err
		}
	}
	s.Base = f.Base.Apply(loaded)
	for i := range s.Variations {
		if s.Variations[i].Name == "" {
			return nil, errors.Errorf("variation %d in %s has no name", i, path)
		}
	}
	return &s, nil
}

type baseFileWrapper struct {
	Base model.Inputs `yaml:"base"`
}

func loadBaseFile(path string) (model.Inputs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Inputs{}, errors.Wrapf(err, "read scenario file %s", path)
	}
	var w baseFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return model.Inputs{}, errors.Wrapf(err, "parse scenario file %s", path)
	}
	return w.Base, nil
}
