package routingmodel

import (
	"fmt"

	"github.com/griffin-west/delivery-route-planner/internal/model"
	"github.com/griffin-west/delivery-route-planner/internal/nodes"
	"github.com/nextmv-io/sdk/route"
)

// vehicleIDs returns the string vehicle ids the route package wants, in
// fleet order ("v1", "v2", ...).
func vehicleIDs(dm *model.DataModel) []string {
	ids := make([]string, dm.Vehicles.Len())
	for i, v := range dm.Vehicles.All() {
		ids[i] = vehicleID(v.ID)
	}
	return ids
}

func vehicleID(id int) string {
	return fmt.Sprintf("v%d", id)
}

// stops converts the node list into route.Stop values. Every node gets a
// synthetic, non-geographic Position: real arc costs come entirely from the
// custom ByIndex measures registered in measures.go, so Position here only
// satisfies the route.Stop shape (it is not read by any measure we wire).
func stops(dm *model.DataModel) []route.Stop {
	out := make([]route.Stop, len(dm.Nodes))
	for i, n := range dm.Nodes {
		out[i] = route.Stop{
			ID:       stopID(i, n),
			Position: route.Position{Lon: float64(i), Lat: 0},
		}
	}
	return out
}

func stopID(index int, n nodes.Node) string {
	switch n.Kind {
	case nodes.Origin:
		return "depot"
	case nodes.Pickup:
		return fmt.Sprintf("pickup-%d", n.Package.ID)
	case nodes.Delivery:
		return fmt.Sprintf("delivery-%d", n.Package.ID)
	default:
		return fmt.Sprintf("node-%d", index)
	}
}

// depots returns the depot position repeated once per vehicle, used as
// both route.Starts and route.Ends: every vehicle starts and ends at node 0.
func depots(dm *model.DataModel) []route.Position {
	depot := route.Position{Lon: float64(nodes.OriginIndex), Lat: 0}
	out := make([]route.Position, dm.Vehicles.Len())
	for i := range out {
		out[i] = depot
	}
	return out
}
