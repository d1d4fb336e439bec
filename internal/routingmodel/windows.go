package routingmodel

import (
	"time"

	"github.com/griffin-west/delivery-route-planner/internal/model"
	"github.com/griffin-west/delivery-route-planner/internal/nodes"
	"github.com/griffin-west/delivery-route-planner/internal/routingtime"
	"github.com/nextmv-io/sdk/route"
)

// Epoch anchors the relative, second-of-day routingtime.Time values onto
// the absolute time.Time the route package's Shifts/Windows expect. Only
// offsets from this epoch are ever meaningful; it is never surfaced in any
// reported result.
var Epoch = time.Unix(0, 0).UTC()

// ToAbsolute converts a second-of-day Time into the absolute time.Time the
// route package's Shifts/Windows/Plan fields use.
func ToAbsolute(t routingtime.Time) time.Time {
	return Epoch.Add(time.Duration(t) * time.Second)
}

// FromAbsolute is the inverse of ToAbsolute, used by the solution extractor
// to turn a Plan's estimated-arrival times back into second-of-day values.
func FromAbsolute(t time.Time) routingtime.Time {
	return routingtime.FromSeconds(int(t.Sub(Epoch).Seconds()))
}

func toAbsolute(t routingtime.Time) time.Time { return ToAbsolute(t) }

// shifts returns one identical workday shift per vehicle: spec.md's Time
// dimension capacity is the same day_duration for every vehicle, realized
// here as route.Shifts.
func shifts(dm *model.DataModel) []route.TimeWindow {
	shift := route.TimeWindow{
		Start: toAbsolute(dm.Scenario.DayStart),
		End:   toAbsolute(dm.Scenario.DayEnd),
	}
	out := make([]route.TimeWindow, dm.Vehicles.Len())
	for i := range out {
		out[i] = shift
	}
	return out
}

// services is a zero-duration service time per stop: the spec has no dwell
// time at a stop beyond the travel arc itself.
func services(dm *model.DataModel) []route.Service {
	out := make([]route.Service, len(dm.Nodes))
	for i, n := range dm.Nodes {
		out[i] = route.Service{ID: stopID(i, n), Duration: 0}
	}
	return out
}

// windowPenalty is the per-node time window and computed drop penalty
// produced for every non-origin node (spec.md step 4).
type windowPenalty struct {
	window  route.Window
	penalty int
}

// buildWindowsAndPenalties computes, for every non-origin node, its
// time window relative to day start and its drop penalty. Node 0 (the
// depot) gets a zero-value window that is never constrained (no package).
func buildWindowsAndPenalties(dm *model.DataModel) []windowPenalty {
	out := make([]windowPenalty, len(dm.Nodes))
	dayDuration := dm.Scenario.DayDuration()

	for i, n := range dm.Nodes {
		if n.Kind == nodes.Origin || n.Package == nil {
			continue
		}
		pkg := n.Package

		start := dm.Scenario.DayStart
		if pkg.Availability != nil && dm.Scenario.Constraints.Availability {
			start = *pkg.Availability
		}
		end := dm.Scenario.DayEnd
		if pkg.Deadline != nil && dm.Scenario.Constraints.Deadline {
			end = *pkg.Deadline
		}

		startSeconds := start.DurationAfter(dm.Scenario.DayStart)
		endSeconds := end.DurationAfter(dm.Scenario.DayStart)

		penalty := float64(dm.Settings.BasePenalty)
		penalty *= float64(dayDuration) / float64(endSeconds-startSeconds)

		if pkg.HasRequiredVehicle() && dm.Scenario.Constraints.RequiredVehicle {
			penalty *= dm.Settings.PenaltyScaleRequiredVehicle
		}
		if n.Kind == nodes.Pickup {
			penalty *= dm.Settings.PenaltyScalePickups
		}

		out[i] = windowPenalty{
			window: route.Window{
				TimeWindow: route.TimeWindow{
					Start: toAbsolute(start),
					End:   toAbsolute(end),
				},
				MaxWait: -1,
			},
			penalty: int(penalty),
		}
	}
	return out
}
