package routingmodel

import (
	"github.com/griffin-west/delivery-route-planner/internal/model"
	"github.com/griffin-west/delivery-route-planner/internal/nodes"
	"github.com/nextmv-io/sdk/route"
)

// precedenceJobs pairs every package's pickup and delivery stop id via
// route.Precedence, realizing spec.md step 4's pickup-before-delivery,
// same-vehicle pairing (router.AddPickupAndDelivery plus the VehicleVar
// and DistanceCumul linear constraints) as a single SDK-level declaration.
func precedenceJobs(dm *model.DataModel) []route.Job {
	jobs := make([]route.Job, 0, len(dm.Packages.All()))
	for _, n := range dm.Nodes {
		if n.Kind != nodes.Pickup || n.Package == nil {
			continue
		}
		jobs = append(jobs, route.Job{
			PickUp:  stopID(0, nodes.Node{Kind: nodes.Pickup, Package: n.Package}),
			DropOff: stopID(0, nodes.Node{Kind: nodes.Delivery, Package: n.Package}),
		})
	}
	return jobs
}

// pairingGuard is a route.PlanUpdater enforcing that a package's pickup and
// delivery stops are either both assigned or both dropped: route.Precedence
// only orders stops once both are assigned to the same vehicle, it does not
// by itself forbid assigning one half of a pair while leaving the other
// unassigned. This penalizes that inconsistent state, steering search
// toward delivering both stops or dropping both (spec.md §4.5 rationale).
type pairingGuard struct {
	pairs   [][2]string // pickup stop id, delivery stop id
	penalty int
}

func newPairingGuard(dm *model.DataModel, perViolationPenalty int) pairingGuard {
	var pairs [][2]string
	for _, n := range dm.Nodes {
		if n.Kind != nodes.Pickup || n.Package == nil {
			continue
		}
		pairs = append(pairs, [2]string{
			stopID(0, nodes.Node{Kind: nodes.Pickup, Package: n.Package}),
			stopID(0, nodes.Node{Kind: nodes.Delivery, Package: n.Package}),
		})
	}
	return pairingGuard{pairs: pairs, penalty: perViolationPenalty}
}

func (g pairingGuard) Update(p route.PartialPlan, vehicles []route.PartialVehicle) (route.PlanUpdater, int, bool) {
	unassigned := make(map[string]bool, p.Unassigned().Len())
	for _, id := range p.Unassigned().Stops() {
		unassigned[id] = true
	}

	violations := 0
	for _, pair := range g.pairs {
		if unassigned[pair[0]] != unassigned[pair[1]] {
			violations++
		}
	}
	return g, violations * g.penalty, true
}
