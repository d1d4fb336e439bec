package routingmodel

import (
	"testing"

	"github.com/griffin-west/delivery-route-planner/internal/parcelcatalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundlePairsLowersOneRelationPerPeer(t *testing.T) {
	dm := newFixture(t)
	pkg1, _ := dm.Packages.Get(1)
	pkg2, _ := dm.Packages.Get(2)
	pkg1.BundledPackages = []*parcelcatalog.Package{pkg2}
	pkg2.BundledPackages = []*parcelcatalog.Package{pkg1}

	stopList := stops(dm)
	pairs := bundlePairs(dm, stopList)

	require.Len(t, pairs, 1, "a symmetric bundle relation should lower to exactly one pairwise constraint")

	pickup1Idx, pickup2Idx := -1, -1
	for i, s := range stopList {
		switch s.ID {
		case "pickup-1":
			pickup1Idx = i
		case "pickup-2":
			pickup2Idx = i
		}
	}
	got := [2]int{pairs[0].pickupA, pairs[0].pickupB}
	want := [2]int{pickup1Idx, pickup2Idx}
	assert.True(t, got == want || got == [2]int{want[1], want[0]})
}

func TestNewRequiredVehicleConstraintMapsOnlyRestrictedStops(t *testing.T) {
	dm := newFixture(t)
	pkg1, _ := dm.Packages.Get(1)
	vehicleID := 1
	pkg1.RequiredVehicleID = &vehicleID

	stopList := stops(dm)
	c := newRequiredVehicleConstraint(dm, stopList)

	// Both of pkg1's stops (pickup and delivery) are restricted; pkg2's are not.
	require.Len(t, c.requiredVehicle, 2)
	for idx, vID := range c.requiredVehicle {
		assert.Contains(t, []string{"pickup-1", "delivery-1"}, stopList[idx].ID)
		assert.Equal(t, "v1", vID)
	}
}

func TestNewMaxMileageConstraintScalesCapacity(t *testing.T) {
	dm := newFixture(t)
	c := newMaxMileageConstraint(dm)
	assert.Equal(t, float64(dm.Settings.MaxMileagePerVehicle*10), c.capacity)
}

func TestNewBundlingPenaltyCarriesPairsAndScale(t *testing.T) {
	pairs := []bundlePair{{pickupA: 1, pickupB: 3}}
	b := newBundlingPenalty(pairs, 500)
	assert.Equal(t, pairs, b.pairs)
	assert.Equal(t, 500, b.penalty)
}
