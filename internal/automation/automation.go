package automation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/storage"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of headless runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario. Values, when given, replace
// the seeded random input.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Size      int    `yaml:"size"`
	Min       int    `yaml:"min"`
	Max       int    `yaml:"max"`
	Seed      int64  `yaml:"seed"`
	Values    []int  `yaml:"values"`
	Save      bool   `yaml:"save"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}
	return &scenario, nil
}

// StepResult pairs a run with the id it was stored under, if any.
type StepResult struct {
	Result *experiment.Result
	RunID  string
}

// RunScenario executes every step in order. Missing size and range fields
// fall back to defaults; steps marked save are written to store.
func RunScenario(ctx context.Context, scenario *Scenario, defaults experiment.Config, store *storage.Store, log *slog.Logger) ([]StepResult, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		log.Info("scenario step", "step", i+1, "of", len(scenario.Steps), "algorithm", step.Algorithm)

		cfg := stepConfig(step, defaults)
		exp, err := experiment.New(cfg)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Result: result}
		if step.Save && store != nil {
			sr.RunID, err = store.Save(cfg, result)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, sr)

		if err := ctx.Err(); err != nil {
			return results, err
		}
	}

	return results, nil
}

func stepConfig(step ScenarioStep, defaults experiment.Config) experiment.Config {
	cfg := defaults
	cfg.Algorithm = step.Algorithm
	cfg.Values = step.Values
	if step.Size > 0 {
		cfg.Size = step.Size
	}
	if step.Min != 0 {
		cfg.Min = step.Min
	}
	if step.Max != 0 {
		cfg.Max = step.Max
	}
	if step.Seed != 0 {
		cfg.Seed = step.Seed
	}
	return cfg
}
