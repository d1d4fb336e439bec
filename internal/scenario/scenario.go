// Package scenario holds the workday bounds, fleet defaults, constraint
// toggles, and search-tuning knobs that parameterize a solve.
package scenario

import (
	"fmt"

	"github.com/griffin-west/delivery-route-planner/internal/routingtime"
)

// Scenario is the workday and fleet-default configuration.
type Scenario struct {
	DayStart routingtime.Time
	DayEnd   routingtime.Time

	FleetSize      int
	VehicleSpeed   float64
	VehicleCapacity int

	Constraints ConstraintToggles
}

// ConstraintToggles selects which optional constraints are active. Every
// toggle, Capacity included, is honored by the routing model builder: with
// Capacity off, no capacity dimension is registered.
type ConstraintToggles struct {
	Capacity       bool
	Availability   bool
	Deadline       bool
	RequiredVehicle bool
	Bundling       bool
}

// DayDuration returns day_end - day_start in seconds.
func (s Scenario) DayDuration() int {
	return s.DayStart.DurationUntil(s.DayEnd)
}

// Validate checks the model-build invariants from spec §7: day_end must be
// after day_start, fleet non-empty, capacity positive.
func (s Scenario) Validate() error {
	if s.DayEnd.DurationAfter(s.DayStart) <= 0 {
		return fmt.Errorf("scenario: day_end must be after day_start")
	}
	if s.FleetSize < 1 {
		return fmt.Errorf("scenario: fleet must not be empty")
	}
	if s.VehicleCapacity < 1 {
		return fmt.Errorf("scenario: vehicle capacity must be at least 1")
	}
	if s.VehicleSpeed <= 0 {
		return fmt.Errorf("scenario: vehicle speed must be positive")
	}
	return nil
}

// FirstSolutionStrategy enumerates the constructive heuristics spec.md
// names for building the initial route set.
type FirstSolutionStrategy int

const (
	LocalCheapest FirstSolutionStrategy = iota
	LocalCheapestCost
	SequentialCheapest
	ParallelCheapest
	BestInsertion
)

// LocalSearchMetaheuristic enumerates the neighborhood-search algorithms
// spec.md names for improving an initial solution.
type LocalSearchMetaheuristic int

const (
	GreedyDescent LocalSearchMetaheuristic = iota
	GuidedLocalSearch
	SimulatedAnnealing
	TabuSearch
	GenericTabuSearch
)

// Settings parameterizes the routing model's cost structure and the
// search driver.
type Settings struct {
	MaxMileagePerVehicle         int
	DistanceSpanCostCoefficient  int
	BasePenalty                  int
	PenaltyScaleRequiredVehicle  float64
	PenaltyScalePickups          float64

	UseFullPropagation bool
	UseSearchLogging   bool

	FirstSolutionStrategy    FirstSolutionStrategy
	LocalSearchMetaheuristic LocalSearchMetaheuristic

	SolverTimeLimitSeconds *int
	SolverSolutionLimit    *int
}

// Validate rejects a negative distance_span_cost_coefficient, base_penalty,
// or max_mileage_per_vehicle. It sets no upper bounds and does not check
// the penalty scale factors, so it does not guarantee that the penalty
// product fits a 64-bit signed integer.
func (s Settings) Validate() error {
	if s.DistanceSpanCostCoefficient < 0 {
		return fmt.Errorf("scenario: distance_span_cost_coefficient must not be negative")
	}
	if s.BasePenalty < 0 {
		return fmt.Errorf("scenario: base_penalty must not be negative")
	}
	if s.MaxMileagePerVehicle < 0 {
		return fmt.Errorf("scenario: max_mileage_per_vehicle must not be negative")
	}
	return nil
}
