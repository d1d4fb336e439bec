package routingmodel

import "github.com/nextmv-io/sdk/route"

// combinedPlanUpdater aggregates every cross-vehicle penalty this model
// needs (pairing consistency, bundling) into the single route.PlanUpdater
// slot route.Update accepts, following the teacher's fleetData pattern of
// folding several bookkeeping concerns into one value-function object.
type combinedPlanUpdater struct {
	pairing  pairingGuard
	bundling *bundlingPenalty
}

func (c combinedPlanUpdater) Update(p route.PartialPlan, vehicles []route.PartialVehicle) (route.PlanUpdater, int, bool) {
	_, pairingValue, _ := c.pairing.Update(p, vehicles)
	value := pairingValue
	if c.bundling != nil {
		_, bundlingValue, _ := c.bundling.Update(p, vehicles)
		value += bundlingValue
	}
	return c, value, true
}

// noOpVehicleUpdater satisfies route.Update's required VehicleUpdater half
// when only the PlanUpdater side carries a value contribution.
type noOpVehicleUpdater struct{}

func (noOpVehicleUpdater) Update(s route.PartialVehicle) (route.VehicleUpdater, int, bool) {
	return noOpVehicleUpdater{}, 0, true
}
