package genetic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarises the fitness of one population snapshot.
type Statistics struct {
	Size          int
	MinFitness    float32
	MaxFitness    float32
	AvgFitness    float32
	StdDevFitness float32
}

// NewStatistics computes fitness statistics. It panics on an empty population.
func NewStatistics[I Individual](population []I) Statistics {
	if len(population) == 0 {
		panic("genetic: statistics of empty population")
	}

	fitness := make([]float64, len(population))
	for i, ind := range population {
		fitness[i] = float64(ind.Fitness())
	}

	mean, std := stat.PopMeanStdDev(fitness, nil)

	return Statistics{
		Size:          len(population),
		MinFitness:    float32(floats.Min(fitness)),
		MaxFitness:    float32(floats.Max(fitness)),
		AvgFitness:    float32(mean),
		StdDevFitness: float32(std),
	}
}
