package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes one stress run.
type Scenario struct {
	Name       string `yaml:"name"`
	Workers    int    `yaml:"workers"`
	Iterations int    `yaml:"iterations"`

	// Stages to run; both run when empty.
	Stages []string `yaml:"stages"`
}

// defaultScenario mirrors the counter check the test suite uses: 8 workers,
// 10k cycles each.
func defaultScenario() Scenario {
	return Scenario{
		Name:       "default",
		Workers:    8,
		Iterations: 10_000,
		Stages:     []string{stageMutex, stageSlot},
	}
}

// loadScenario reads a scenario from a YAML file and fills in defaults for
// omitted fields.
func loadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}

	sc := defaultScenario()
	sc.Name = ""
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	if len(sc.Stages) == 0 {
		sc.Stages = []string{stageMutex, stageSlot}
	}
	return sc, sc.validate()
}

func (sc Scenario) validate() error {
	if sc.Workers < 1 {
		return fmt.Errorf("scenario %q: workers must be >= 1, got %d", sc.Name, sc.Workers)
	}
	if sc.Iterations < 1 {
		return fmt.Errorf("scenario %q: iterations must be >= 1, got %d", sc.Name, sc.Iterations)
	}
	for _, st := range sc.Stages {
		if st != stageMutex && st != stageSlot {
			return fmt.Errorf("scenario %q: unknown stage %q", sc.Name, st)
		}
	}
	return nil
}
