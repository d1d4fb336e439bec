package routingmodel

import (
	"time"

	"github.com/griffin-west/delivery-route-planner/internal/scenario"
	"github.com/nextmv-io/sdk/store"
)

// defaultTimeLimit matches the teacher demos' fallback: local runs are
// otherwise unbounded, but a sane default keeps an accidental unbounded
// solve from running forever when no limit is configured.
const defaultTimeLimit = 10 * time.Second

// toStoreOptions maps spec.md's SearchSettings onto the nextmv/sdk store
// engine's options (spec.md §4.6). The enumerated first-solution-strategy
// and local-search-metaheuristic values narrow to tuning knobs over the
// store engine's single unified local search, since unlike OR-Tools it does
// not expose distinct named algorithms for each (see SPEC_FULL.md §4.6).
// first_solution_strategy is wired in build.go instead, via route.Threads.
func toStoreOptions(settings scenario.Settings) store.Options {
	var opts store.Options

	opts.Diagram.Expansion.Limit = expansionLimitFor(settings.LocalSearchMetaheuristic)

	switch {
	case settings.SolverTimeLimitSeconds != nil:
		opts.Limits.Duration = time.Duration(*settings.SolverTimeLimitSeconds) * time.Second
	default:
		opts.Limits.Duration = defaultTimeLimit
	}

	return opts
}

// expansionLimitFor maps the enumerated metaheuristic onto the store
// engine's expansion-limit knob. The teacher demos all fix this at 1
// (a single-neighborhood greedy descent); wider neighborhood metaheuristics
// get a larger expansion limit so the setting has an actual effect on the
// engine rather than being silently ignored, since the store engine has no
// named-algorithm switch to bind the enum to directly.
func expansionLimitFor(m scenario.LocalSearchMetaheuristic) int {
	switch m {
	case scenario.GuidedLocalSearch, scenario.SimulatedAnnealing:
		return 2
	case scenario.TabuSearch, scenario.GenericTabuSearch:
		return 3
	default:
		return 1
	}
}
