package solution

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/griffin-west/delivery-route-planner/internal/model"
	"github.com/griffin-west/delivery-route-planner/internal/nodes"
	"github.com/griffin-west/delivery-route-planner/internal/parcelcatalog"
	"github.com/griffin-west/delivery-route-planner/internal/routingmodel"
	"github.com/nextmv-io/sdk/route"
)

// stopLookup resolves an engine stop id (as produced by routingmodel's
// stopID naming: "depot", "pickup-<id>", "delivery-<id>") back to the node
// kind and package it represents.
type stopLookup struct {
	kind nodes.Kind
	pkg  int // package id, meaningless for ORIGIN
}

func buildStopLookup(id string) (stopLookup, error) {
	switch {
	case id == "depot":
		return stopLookup{kind: nodes.Origin}, nil
	case strings.HasPrefix(id, "pickup-"):
		n, err := strconv.Atoi(strings.TrimPrefix(id, "pickup-"))
		if err != nil {
			return stopLookup{}, fmt.Errorf("solution: bad stop id %q: %w", id, err)
		}
		return stopLookup{kind: nodes.Pickup, pkg: n}, nil
	case strings.HasPrefix(id, "delivery-"):
		n, err := strconv.Atoi(strings.TrimPrefix(id, "delivery-"))
		if err != nil {
			return stopLookup{}, fmt.Errorf("solution: bad stop id %q: %w", id, err)
		}
		return stopLookup{kind: nodes.Delivery, pkg: n}, nil
	default:
		return stopLookup{}, fmt.Errorf("solution: unrecognized stop id %q", id)
	}
}

// Extract walks the engine's plan and produces the Solution tree (spec.md
// C9): for each vehicle, its ordered stops with running load, visit time,
// and cumulative mileage, writing each delivered package's ShippedAt,
// DeliveredAt, and VehicleUsed result fields as it goes.
//
// Every package result field write happens here and only here — the single
// place spec.md §5 designates as the last mutation before a solution is
// exposed. Mileage is tracked internally in the model's scaled (miles x10)
// units and only converted to (fractional) miles by the reporting queries
// in queries.go, once, at display time, not once per arc.
func Extract(dm *model.DataModel, plan *route.Plan) (*Solution, error) {
	distances := dm.Distances
	addressByStop := addressIndex(dm)

	routes := make([]Route, 0, len(plan.Vehicles))
	for _, pv := range plan.Vehicles {
		vehicleID, err := parseVehicleID(pv.ID)
		if err != nil {
			return nil, err
		}
		vehicle, ok := dm.Vehicles.Get(vehicleID)
		if !ok {
			return nil, fmt.Errorf("solution: plan references unknown vehicle %q", pv.ID)
		}

		stops := make([]Stop, 0, len(pv.Route))
		load := 0
		scaledMileage := 0
		var prevStreet string

		for i, ps := range pv.Route {
			lookup, err := buildStopLookup(ps.ID)
			if err != nil {
				return nil, err
			}

			street := addressByStop[ps.ID]
			if i > 0 {
				scaledMileage += distances[prevStreet][street]
			}
			prevStreet = street

			load += lookup.kind.CapacityDelta()
			visitTime := routingmodel.FromAbsolute(ps.EstimatedArrival)

			var resultPkg *parcelcatalog.Package
			if lookup.kind != nodes.Origin {
				found, ok := dm.Packages.Get(lookup.pkg)
				if !ok {
					return nil, fmt.Errorf("solution: unknown package %d referenced by stop %q", lookup.pkg, ps.ID)
				}
				resultPkg = found
				switch lookup.kind {
				case nodes.Pickup:
					shipped := visitTime
					found.ShippedAt = &shipped
					usedVehicle := vehicle.ID
					found.VehicleUsed = &usedVehicle
				case nodes.Delivery:
					delivered := visitTime
					found.DeliveredAt = &delivered
				}
			}

			stops = append(stops, Stop{
				Kind:      lookup.kind,
				Package:   resultPkg,
				Load:      load,
				VisitTime: visitTime,
				Mileage:   scaledMileage,
			})
		}

		routes = append(routes, Route{Vehicle: vehicle, Stops: stops})
	}

	return &Solution{Model: dm, Routes: routes}, nil
}

func parseVehicleID(id string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "v"))
	if err != nil {
		return 0, fmt.Errorf("solution: bad vehicle id %q: %w", id, err)
	}
	return n, nil
}

// addressIndex maps every engine stop id to the street it represents, so
// mileage can be recomputed from the same distance matrix the model was
// built from.
func addressIndex(dm *model.DataModel) map[string]string {
	out := make(map[string]string, len(dm.Nodes))
	out["depot"] = dm.DepotStreet
	for _, n := range dm.Nodes {
		if n.Kind == nodes.Origin || n.Package == nil {
			continue
		}
		switch n.Kind {
		case nodes.Pickup:
			out[fmt.Sprintf("pickup-%d", n.Package.ID)] = dm.DepotStreet
		case nodes.Delivery:
			out[fmt.Sprintf("delivery-%d", n.Package.ID)] = n.Package.Address
		}
	}
	return out
}
