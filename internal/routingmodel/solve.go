package routingmodel

import (
	"context"
	"fmt"

	"github.com/griffin-west/delivery-route-planner/internal/model"
	"github.com/nextmv-io/sdk/route"
	"github.com/sirupsen/logrus"
)

// Solve builds the routing model from dm, runs the configured search to
// completion, and returns the engine's plan. It returns (nil, nil) — spec
// §7's "no solution" outcome — when the engine finds no assignment, or
// when the assignment it finds delivers zero packages.
//
// Solve is synchronous and blocking (spec.md §5): the only suspension
// point is the solver call below, bounded by the configured (or default)
// time limit.
//
// The plan is read off the engine's own result rather than captured as a
// side effect of a Format callback: router.Format registers an output
// encoder the corpus only ever invokes through the run.Run CLI pipeline
// (e.g. routing-default/main.go), which this package bypasses entirely to
// stay synchronous. Instead, router.Plan() exposes the assembled Plan as a
// store.Var[route.Plan] — the store package's usual pattern for reading a
// value back out of a completed store.Solution — so the final solution's
// own Store is asked for the Plan variable's value directly.
func Solve(ctx context.Context, dm *model.DataModel) (plan *route.Plan, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Warn("routingmodel: engine failure, treating as no solution")
			plan, err = nil, nil
		}
	}()

	built, buildErr := build(dm)
	if buildErr != nil {
		return nil, buildErr
	}

	opts := toStoreOptions(dm.Settings)
	if dm.Settings.UseSearchLogging {
		logrus.WithFields(logrus.Fields{
			"duration_limit":  opts.Limits.Duration,
			"expansion_limit": opts.Diagram.Expansion.Limit,
			"first_solution":  dm.Settings.FirstSolutionStrategy,
			"metaheuristic":   dm.Settings.LocalSearchMetaheuristic,
		}).Debug("routingmodel: starting search")
	}

	solver, solverErr := built.router.Solver(opts)
	if solverErr != nil {
		return nil, fmt.Errorf("routingmodel: construct solver: %w", solverErr)
	}

	solution := solver.Last(ctx)
	if solution == nil {
		return nil, nil
	}

	found := built.router.Plan().Get(solution.Store())
	if len(found.Vehicles) == 0 || allStopsUnassigned(&found) {
		return nil, nil
	}

	return &found, nil
}

// allStopsUnassigned reports whether every vehicle's route is a bare
// depot-to-depot loop, i.e. the solver found an assignment but delivered
// zero packages — spec.md §7 treats this identically to infeasibility.
func allStopsUnassigned(plan *route.Plan) bool {
	for _, v := range plan.Vehicles {
		if len(v.Route) > 2 {
			return false
		}
	}
	return true
}
