// Package main provides CMA-ES optimization for flock simulation parameters.
package main

import (
	"math"

	"github.com/pthm-cable/flock/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Genetic algorithm
			{Name: "mutation_probability", Path: "genetic.mutation_probability", Min: 0.001, Max: 0.2, Default: 0.01},
			{Name: "mutation_coefficient", Path: "genetic.mutation_coefficient", Min: 0.01, Max: 1.0, Default: 0.3},
			// Eye (cell count is fixed: it sets the brain shape)
			{Name: "fov_range", Path: "eye.fov_range", Min: 0.05, Max: 0.5, Default: 0.25},
			{Name: "fov_angle", Path: "eye.fov_angle", Min: 0.5, Max: 6.2, Default: math.Pi + math.Pi/4},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig clamps values and writes them into cfg in Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Genetic.MutationProbability = clamped[0]
	cfg.Genetic.MutationCoefficient = clamped[1]
	cfg.Eye.FOVRange = clamped[2]
	cfg.Eye.FOVAngle = clamped[3]
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Genetic.MutationProbability,
		cfg.Genetic.MutationCoefficient,
		cfg.Eye.FOVRange,
		cfg.Eye.FOVAngle,
	}
}
