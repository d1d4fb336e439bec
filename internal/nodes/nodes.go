// Package nodes flattens the package catalog into the depot/pickup/delivery
// node list the routing engine operates over.
package nodes

import "github.com/griffin-west/delivery-route-planner/internal/parcelcatalog"

// Kind identifies what a node represents and how it affects the Capacity
// dimension. PICKUP loads a package (+1 on board); DELIVERY unloads one
// (-1); ORIGIN is the depot and carries no load change.
type Kind int

const (
	Origin Kind = iota
	Pickup
	Delivery
)

// CapacityDelta is the on-board-count change a node of this kind causes.
// Swapping the Pickup/Delivery signs is a silent bug: capacity would read
// as zero everywhere while still producing plausible-looking routes.
func (k Kind) CapacityDelta() int {
	switch k {
	case Pickup:
		return 1
	case Delivery:
		return -1
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case Origin:
		return "ORIGIN"
	case Pickup:
		return "PICKUP"
	case Delivery:
		return "DELIVERY"
	default:
		return "UNKNOWN"
	}
}

// Node is one stop candidate: the depot, a pickup, or a delivery.
type Node struct {
	Kind    Kind
	Address string
	Package *parcelcatalog.Package // nil for ORIGIN
}

// OriginIndex is the fixed depot node index, used as every vehicle's start
// and end.
const OriginIndex = 0

// Build constructs the node list from the catalog in iteration order: node
// 0 is the depot; then for each package, a PICKUP at depotAddress followed
// by a DELIVERY at the package's address. Node count is 1 + 2*len(packages).
func Build(catalog *parcelcatalog.Catalog, depotAddress string) []Node {
	packages := catalog.All()
	out := make([]Node, 0, 1+2*len(packages))
	out = append(out, Node{Kind: Origin, Address: depotAddress})
	for _, pkg := range packages {
		out = append(out, Node{Kind: Pickup, Address: depotAddress, Package: pkg})
		out = append(out, Node{Kind: Delivery, Address: pkg.Address, Package: pkg})
	}
	return out
}

// PickupIndex returns the index of a package's PICKUP node within a node
// list built by Build from the same catalog.
func PickupIndex(packageOrderPosition int) int {
	return 1 + 2*packageOrderPosition
}

// DeliveryIndex returns the index of a package's DELIVERY node.
func DeliveryIndex(packageOrderPosition int) int {
	return PickupIndex(packageOrderPosition) + 1
}
