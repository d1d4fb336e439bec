package scenario

import (
	"fmt"
	"os"

	"github.com/griffin-west/delivery-route-planner/internal/routingtime"
	"gopkg.in/yaml.v3"
)

// config is the on-disk YAML shape for a Scenario + Settings pair.
type config struct {
	DayStart        string `yaml:"day_start"`
	DayEnd          string `yaml:"day_end"`
	FleetSize       int    `yaml:"fleet_size"`
	VehicleSpeed    float64 `yaml:"vehicle_speed_mph"`
	VehicleCapacity int    `yaml:"vehicle_capacity"`

	Constraints struct {
		Capacity        bool `yaml:"capacity"`
		Availability    bool `yaml:"availability"`
		Deadline        bool `yaml:"deadline"`
		RequiredVehicle bool `yaml:"required_vehicle"`
		Bundling        bool `yaml:"bundling"`
	} `yaml:"constraints"`

	Settings struct {
		MaxMileagePerVehicle        int     `yaml:"max_mileage_per_vehicle"`
		DistanceSpanCostCoefficient int     `yaml:"distance_span_cost_coefficient"`
		BasePenalty                 int     `yaml:"base_penalty"`
		PenaltyScaleRequiredVehicle float64 `yaml:"penalty_scale_req_vehicle"`
		PenaltyScalePickups         float64 `yaml:"penalty_scale_pickups"`
		UseFullPropagation          bool    `yaml:"use_full_propagation"`
		UseSearchLogging            bool    `yaml:"use_search_logging"`
		FirstSolutionStrategy       string  `yaml:"first_solution_strategy"`
		LocalSearchMetaheuristic    string  `yaml:"local_search_metaheuristic"`
		SolverTimeLimitSeconds      *int    `yaml:"solver_time_limit_seconds"`
		SolverSolutionLimit         *int    `yaml:"solver_solution_limit"`
	} `yaml:"settings"`
}

var firstSolutionStrategies = map[string]FirstSolutionStrategy{
	"local_cheapest":      LocalCheapest,
	"local_cheapest_cost": LocalCheapestCost,
	"sequential_cheapest": SequentialCheapest,
	"parallel_cheapest":   ParallelCheapest,
	"best_insertion":      BestInsertion,
}

var localSearchMetaheuristics = map[string]LocalSearchMetaheuristic{
	"greedy_descent":      GreedyDescent,
	"guided_local_search": GuidedLocalSearch,
	"simulated_annealing": SimulatedAnnealing,
	"tabu_search":         TabuSearch,
	"generic_tabu_search": GenericTabuSearch,
}

// Load reads a YAML scenario/settings file from path.
func Load(path string) (Scenario, Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, Settings{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Scenario{}, Settings{}, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	dayStart, err := routingtime.FromClock(cfg.DayStart)
	if err != nil {
		return Scenario{}, Settings{}, fmt.Errorf("scenario: day_start: %w", err)
	}
	dayEnd, err := routingtime.FromClock(cfg.DayEnd)
	if err != nil {
		return Scenario{}, Settings{}, fmt.Errorf("scenario: day_end: %w", err)
	}

	sc := Scenario{
		DayStart:        dayStart,
		DayEnd:          dayEnd,
		FleetSize:       cfg.FleetSize,
		VehicleSpeed:    cfg.VehicleSpeed,
		VehicleCapacity: cfg.VehicleCapacity,
		Constraints: ConstraintToggles{
			Capacity:        cfg.Constraints.Capacity,
			Availability:    cfg.Constraints.Availability,
			Deadline:        cfg.Constraints.Deadline,
			RequiredVehicle: cfg.Constraints.RequiredVehicle,
			Bundling:        cfg.Constraints.Bundling,
		},
	}

	strategy, ok := firstSolutionStrategies[cfg.Settings.FirstSolutionStrategy]
	if cfg.Settings.FirstSolutionStrategy != "" && !ok {
		return Scenario{}, Settings{}, fmt.Errorf("scenario: unknown first_solution_strategy %q", cfg.Settings.FirstSolutionStrategy)
	}
	metaheuristic, ok := localSearchMetaheuristics[cfg.Settings.LocalSearchMetaheuristic]
	if cfg.Settings.LocalSearchMetaheuristic != "" && !ok {
		return Scenario{}, Settings{}, fmt.Errorf("scenario: unknown local_search_metaheuristic %q", cfg.Settings.LocalSearchMetaheuristic)
	}

	settings := Settings{
		MaxMileagePerVehicle:        cfg.Settings.MaxMileagePerVehicle,
		DistanceSpanCostCoefficient: cfg.Settings.DistanceSpanCostCoefficient,
		BasePenalty:                 cfg.Settings.BasePenalty,
		PenaltyScaleRequiredVehicle: cfg.Settings.PenaltyScaleRequiredVehicle,
		PenaltyScalePickups:         cfg.Settings.PenaltyScalePickups,
		UseFullPropagation:          cfg.Settings.UseFullPropagation,
		UseSearchLogging:            cfg.Settings.UseSearchLogging,
		FirstSolutionStrategy:       strategy,
		LocalSearchMetaheuristic:    metaheuristic,
		SolverTimeLimitSeconds:      cfg.Settings.SolverTimeLimitSeconds,
		SolverSolutionLimit:         cfg.Settings.SolverSolutionLimit,
	}

	if err := sc.Validate(); err != nil {
		return Scenario{}, Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return Scenario{}, Settings{}, err
	}

	return sc, settings, nil
}
