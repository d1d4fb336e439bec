// Package solution holds the extracted, queryable result of a solve: the
// per-vehicle ordered stops with cumulative load, mileage, and time
// (spec.md C9), plus the reporting aggregates built from them (C10).
package solution

import (
	"github.com/griffin-west/delivery-route-planner/internal/fleet"
	"github.com/griffin-west/delivery-route-planner/internal/model"
	"github.com/griffin-west/delivery-route-planner/internal/nodes"
	"github.com/griffin-west/delivery-route-planner/internal/parcelcatalog"
	"github.com/griffin-west/delivery-route-planner/internal/routingtime"
)

// Stop is one visited node on a route.
type Stop struct {
	Kind      nodes.Kind
	Package   *parcelcatalog.Package // nil at the depot
	Load      int
	VisitTime routingtime.Time
	// Mileage is cumulative distance along this route in the model's
	// scaled integer units (miles x addressbook.DistanceScaleFactor).
	// Use Miles or the Solution queries for a human-readable mile value.
	Mileage int
}

// Route is one vehicle's ordered sequence of stops, starting and ending at
// the depot. A Route is produced for every vehicle even when it never
// leaves the depot.
type Route struct {
	Vehicle fleet.Vehicle
	Stops   []Stop
}

// Solution is the full result of a solve: the data model it was computed
// against, and exactly one Route per vehicle. Routes are immutable once
// built.
type Solution struct {
	Model  *model.DataModel
	Routes []Route
}
