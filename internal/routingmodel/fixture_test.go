package routingmodel

import (
	"testing"

	"github.com/griffin-west/delivery-route-planner/internal/addressbook"
	"github.com/griffin-west/delivery-route-planner/internal/fleet"
	"github.com/griffin-west/delivery-route-planner/internal/model"
	"github.com/griffin-west/delivery-route-planner/internal/parcelcatalog"
	"github.com/griffin-west/delivery-route-planner/internal/routingtime"
	"github.com/griffin-west/delivery-route-planner/internal/scenario"
	"github.com/stretchr/testify/require"
)

// newFixture builds a small, valid DataModel: a depot and two other
// streets, one vehicle, and two packages, one of which has a tight
// availability/deadline window.
func newFixture(t *testing.T) *model.DataModel {
	t.Helper()

	order := []string{"depot", "streetA", "streetB"}
	addrs := map[string]addressbook.Address{
		"depot": {Street: "depot", Miles: map[string]float64{
			"depot": 0, "streetA": 2, "streetB": 4,
		}},
		"streetA": {Street: "streetA", Miles: map[string]float64{
			"depot": 2, "streetA": 0, "streetB": 3,
		}},
		"streetB": {Street: "streetB", Miles: map[string]float64{
			"depot": 4, "streetA": 3, "streetB": 0,
		}},
	}
	book, err := addressbook.New(order, addrs)
	require.NoError(t, err)

	vehicles, err := fleet.NewShared(book, 1, 30, 10)
	require.NoError(t, err)

	dayStart, err := routingtime.FromClock("08:00")
	require.NoError(t, err)
	dayEnd, err := routingtime.FromClock("18:00")
	require.NoError(t, err)

	avail, err := routingtime.FromClock("09:00")
	require.NoError(t, err)
	deadline, err := routingtime.FromClock("10:00")
	require.NoError(t, err)

	pkg1 := &parcelcatalog.Package{ID: 1, Address: "streetA"}
	pkg2 := &parcelcatalog.Package{
		ID: 2, Address: "streetB",
		Availability: &avail,
		Deadline:     &deadline,
	}
	catalog := parcelcatalog.New([]int{1, 2}, map[int]*parcelcatalog.Package{1: pkg1, 2: pkg2})

	sc := scenario.Scenario{
		DayStart:        dayStart,
		DayEnd:          dayEnd,
		FleetSize:       1,
		VehicleSpeed:    30,
		VehicleCapacity: 10,
		Constraints: scenario.ConstraintToggles{
			Capacity:        true,
			Availability:    true,
			Deadline:        true,
			RequiredVehicle: true,
			Bundling:        true,
		},
	}
	settings := scenario.Settings{
		BasePenalty:                 1000,
		PenaltyScaleRequiredVehicle: 2,
		PenaltyScalePickups:         1.5,
		MaxMileagePerVehicle:        100,
	}

	dm, err := model.New(book, vehicles, catalog, "depot", sc, settings)
	require.NoError(t, err)
	return dm
}
