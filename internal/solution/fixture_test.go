package solution

import (
	"testing"

	"github.com/griffin-west/delivery-route-planner/internal/addressbook"
	"github.com/griffin-west/delivery-route-planner/internal/fleet"
	"github.com/griffin-west/delivery-route-planner/internal/model"
	"github.com/griffin-west/delivery-route-planner/internal/parcelcatalog"
	"github.com/griffin-west/delivery-route-planner/internal/routingmodel"
	"github.com/griffin-west/delivery-route-planner/internal/routingtime"
	"github.com/griffin-west/delivery-route-planner/internal/scenario"
	"github.com/nextmv-io/sdk/route"
	"github.com/stretchr/testify/require"
)

// newFixture builds a depot plus two streets, one vehicle, and two
// packages (pkg2 never delivered, to exercise MissedPackages).
func newFixture(t *testing.T) *model.DataModel {
	t.Helper()

	order := []string{"depot", "streetA", "streetB"}
	addrs := map[string]addressbook.Address{
		"depot":   {Street: "depot", Miles: map[string]float64{"depot": 0, "streetA": 2, "streetB": 4}},
		"streetA": {Street: "streetA", Miles: map[string]float64{"depot": 2, "streetA": 0, "streetB": 3}},
		"streetB": {Street: "streetB", Miles: map[string]float64{"depot": 4, "streetA": 3, "streetB": 0}},
	}
	book, err := addressbook.New(order, addrs)
	require.NoError(t, err)

	vehicles, err := fleet.NewShared(book, 1, 30, 10)
	require.NoError(t, err)

	dayStart, err := routingtime.FromClock("08:00")
	require.NoError(t, err)
	dayEnd, err := routingtime.FromClock("18:00")
	require.NoError(t, err)

	pkg1 := &parcelcatalog.Package{ID: 1, Address: "streetA"}
	pkg2 := &parcelcatalog.Package{ID: 2, Address: "streetB"}
	catalog := parcelcatalog.New([]int{1, 2}, map[int]*parcelcatalog.Package{1: pkg1, 2: pkg2})

	sc := scenario.Scenario{
		DayStart: dayStart, DayEnd: dayEnd,
		FleetSize: 1, VehicleSpeed: 30, VehicleCapacity: 10,
		Constraints: scenario.ConstraintToggles{Capacity: true},
	}
	settings := scenario.Settings{BasePenalty: 1000}

	dm, err := model.New(book, vehicles, catalog, "depot", sc, settings)
	require.NoError(t, err)
	return dm
}

// onePackagePlan builds a plan delivering only pkg 1: depot -> pickup-1 ->
// delivery-1 -> depot.
func onePackagePlan(dm *model.DataModel) *route.Plan {
	arrival := func(offsetSeconds int) routingtime.Time {
		return routingtime.FromSeconds(int(dm.Scenario.DayStart) + offsetSeconds)
	}
	stopAt := func(id string, offsetSeconds int) route.PlanStop {
		return route.PlanStop{ID: id, EstimatedArrival: routingmodel.ToAbsolute(arrival(offsetSeconds))}
	}
	return &route.Plan{
		Vehicles: []route.PlanVehicle{
			{
				ID: "v1",
				Route: []route.PlanStop{
					stopAt("depot", 0),
					stopAt("pickup-1", 60),
					stopAt("delivery-1", 300),
					stopAt("depot", 600),
				},
			},
		},
	}
}
