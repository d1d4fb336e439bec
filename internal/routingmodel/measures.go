package routingmodel

import (
	"github.com/griffin-west/delivery-route-planner/internal/addressbook"
	"github.com/griffin-west/delivery-route-planner/internal/model"
	"github.com/nextmv-io/sdk/route"
)

// nodeCostMeasure is a route.ByIndex measure operating directly in node-index
// space: unlike the corpus's Haversine-derived measures (which go through
// measure.Point + route.Indexed), our costs already come from a
// precomputed from-street/to-street matrix, so this type looks the cost up
// directly for the pair of node indices it is asked about. It stands in for
// the per-pair RegisterTransitCallback closures of spec.md step 2/3.
type nodeCostMeasure struct {
	costs addressbook.CostMap
	// streetOf resolves a node index to the street used for its cost-map
	// lookup, since pickup nodes use the depot street while delivery nodes
	// use the package's destination street.
	streetOf func(nodeIndex int) string
}

// Cost returns the integer transit cost from node "from" to node "to".
func (m nodeCostMeasure) Cost(from, to int) float64 {
	return float64(m.costs[m.streetOf(from)][m.streetOf(to)])
}

// distanceMeasure builds the single shared arc-cost measure (spec.md step 2:
// "Register a transit callback ... looks up the scaled-integer distance").
func distanceMeasure(dm *model.DataModel) route.ByIndex {
	return nodeCostMeasure{
		costs:    dm.Distances,
		streetOf: streetOfFunc(dm),
	}
}

// timeMeasures builds one measure per vehicle (spec.md step 3: "one transit
// callback per vehicle, each closing over that vehicle's duration map").
func timeMeasures(dm *model.DataModel) []route.ByIndex {
	vehicles := dm.Vehicles.All()
	out := make([]route.ByIndex, len(vehicles))
	streetOf := streetOfFunc(dm)
	for i, v := range vehicles {
		out[i] = nodeCostMeasure{costs: v.Durations, streetOf: streetOf}
	}
	return out
}

// streetOfFunc resolves a router index to the street used for its cost-map
// lookup. The router's index space is larger than our node list: per
// Parcel Routing Techtalk/main.go:114-115, route.NewRouter appends two
// synthetic start/end points per vehicle after the stop points, so valid
// indices run from 0 to len(stops)+2*vehicleCount-1, not just
// 0..len(stops)-1. Every one of those extra indices is a depot position in
// this model (every vehicle starts and ends at the same depot, per
// spec.md's single fixed depot), so any index beyond the node list
// resolves to the depot street regardless of which vehicle or which end
// (start/end) it represents.
func streetOfFunc(dm *model.DataModel) func(int) string {
	numNodes := len(dm.Nodes)
	depot := dm.DepotStreet
	return func(nodeIndex int) string {
		if nodeIndex < numNodes {
			return dm.Nodes[nodeIndex].Address
		}
		return depot
	}
}
