// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/flock/neural"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Animal    AnimalConfig    `yaml:"animal"`
	Eye       EyeConfig       `yaml:"eye"`
	Brain     BrainConfig     `yaml:"brain"`
	Genetic   GeneticConfig   `yaml:"genetic"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds population sizes and the unit-square bounds every
// position is kept inside.
type WorldConfig struct {
	Animals  int     `yaml:"animals"`
	Foods    int     `yaml:"foods"`
	MinCoord float64 `yaml:"min_coord"`
	MaxCoord float64 `yaml:"max_coord"`
}

// AnimalConfig holds per-tick motion limits.
type AnimalConfig struct {
	InitialSpeed float64 `yaml:"initial_speed"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MaxAccel     float64 `yaml:"max_accel"`    // Largest speed change per tick
	MaxRotation  float64 `yaml:"max_rotation"` // Largest heading change per tick (radians)
	EatRadius    float64 `yaml:"eat_radius"`
}

// EyeConfig holds the field of view shared by every animal.
type EyeConfig struct {
	FOVRange float64 `yaml:"fov_range"`
	FOVAngle float64 `yaml:"fov_angle"` // radians
	Cells    int     `yaml:"cells"`
}

// BrainConfig holds neural network shape parameters. Inputs come from the
// eye cells and the two outputs are fixed by neural.BrainOutputs.
type BrainConfig struct {
	HiddenLayers []int `yaml:"hidden_layers"` // Sizes of hidden layers; empty = [2*cells]
}

// GeneticConfig holds generation length and mutation parameters.
type GeneticConfig struct {
	GenerationLength    int     `yaml:"generation_length"` // Ticks per generation
	MutationProbability float64 `yaml:"mutation_probability"`
	MutationCoefficient float64 `yaml:"mutation_coefficient"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int `yaml:"perf_window"`  // Ticks averaged by the perf collector
	HistorySize int `yaml:"history_size"` // Generations kept for the HUD chart
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Topology      []int   // [cells, hidden..., outputs]
	ChromosomeLen int     // Genes per animal
	ScreenW32     float32 // Screen.Width as float32
	ScreenH32     float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults. It panics if they fail to parse or
// validate, which can only happen through a broken build.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate reports every out-of-range parameter, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Animals > 0, "world.animals must be positive, got %d", c.World.Animals)
	check(c.World.Foods > 0, "world.foods must be positive, got %d", c.World.Foods)
	check(c.World.MinCoord < c.World.MaxCoord, "world.min_coord (%v) must be below world.max_coord (%v)", c.World.MinCoord, c.World.MaxCoord)

	check(c.Animal.MinSpeed <= c.Animal.MaxSpeed, "animal.min_speed (%v) exceeds animal.max_speed (%v)", c.Animal.MinSpeed, c.Animal.MaxSpeed)
	check(c.Animal.MaxAccel >= 0, "animal.max_accel must not be negative, got %v", c.Animal.MaxAccel)
	check(c.Animal.MaxRotation >= 0, "animal.max_rotation must not be negative, got %v", c.Animal.MaxRotation)
	check(c.Animal.EatRadius > 0, "animal.eat_radius must be positive, got %v", c.Animal.EatRadius)

	check(c.Eye.FOVRange > 0, "eye.fov_range must be positive, got %v", c.Eye.FOVRange)
	check(c.Eye.FOVAngle > 0, "eye.fov_angle must be positive, got %v", c.Eye.FOVAngle)
	check(c.Eye.Cells > 0, "eye.cells must be positive, got %d", c.Eye.Cells)

	for i, n := range c.Brain.HiddenLayers {
		check(n > 0, "brain.hidden_layers[%d] must be positive, got %d", i, n)
	}

	check(c.Genetic.GenerationLength > 0, "genetic.generation_length must be positive, got %d", c.Genetic.GenerationLength)
	check(c.Genetic.MutationProbability >= 0 && c.Genetic.MutationProbability <= 1,
		"genetic.mutation_probability must be in [0, 1], got %v", c.Genetic.MutationProbability)
	check(c.Genetic.MutationCoefficient >= 0, "genetic.mutation_coefficient must not be negative, got %v", c.Genetic.MutationCoefficient)

	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config. It must run
// after Validate: the eye panics on non-positive parameters.
func (c *Config) computeDerived() {
	eye := neural.NewEye(float32(c.Eye.FOVRange), float32(c.Eye.FOVAngle), c.Eye.Cells)
	topology := neural.BrainTopology(eye, c.Brain.HiddenLayers)

	c.Derived.Topology = []int(topology)
	c.Derived.ChromosomeLen = topology.ChromosomeLen()

	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
