package solution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilesConvertsScaledUnits(t *testing.T) {
	assert.Equal(t, 2.0, Miles(20))
	assert.Equal(t, 0.5, Miles(5))
}

func TestSolutionQueries(t *testing.T) {
	dm := newFixture(t)
	plan := onePackagePlan(dm)

	sol, err := Extract(dm, plan)
	require.NoError(t, err)

	assert.Greater(t, sol.TotalMileage(), 0.0)
	assert.Equal(t, dm.Scenario.DayStart+600, sol.EndTime())

	delivered := sol.DeliveredPackages()
	require.Len(t, delivered, 1)
	assert.Equal(t, 1, delivered[0].ID)

	missed := sol.MissedPackages()
	require.Len(t, missed, 1)
	assert.Equal(t, 2, missed[0].ID)

	assert.Equal(t, 50.0, sol.DeliveryPercentage())
}

func TestDeliveryPercentageAllMissed(t *testing.T) {
	dm := newFixture(t)
	sol := &Solution{Model: dm, Routes: []Route{{Vehicle: dm.Vehicles.All()[0]}}}
	assert.Equal(t, 0.0, sol.DeliveryPercentage())
}
