package scenario_test

import (
	"os"
	"testing"

	"github.com/griffin-west/delivery-route-planner/internal/scenario"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsBadDayBounds(t *testing.T) {
	s := scenario.Scenario{DayStart: 100, DayEnd: 100, FleetSize: 1, VehicleSpeed: 18, VehicleCapacity: 4}
	require.Error(t, s.Validate())
}

func TestValidateRejectsEmptyFleet(t *testing.T) {
	s := scenario.Scenario{DayStart: 0, DayEnd: 100, FleetSize: 0, VehicleSpeed: 18, VehicleCapacity: 4}
	require.Error(t, s.Validate())
}

func TestDayDuration(t *testing.T) {
	s := scenario.Scenario{DayStart: 100, DayEnd: 500}
	require.Equal(t, 400, s.DayDuration())
}

const sampleYAML = `
day_start: "08:00:00"
day_end: "17:00:00"
fleet_size: 2
vehicle_speed_mph: 18
vehicle_capacity: 16
constraints:
  capacity: true
  availability: true
  deadline: true
  required_vehicle: true
  bundling: true
settings:
  max_mileage_per_vehicle: 140
  distance_span_cost_coefficient: 0
  base_penalty: 100000
  penalty_scale_req_vehicle: 3
  penalty_scale_pickups: 5
  use_full_propagation: true
  use_search_logging: false
  first_solution_strategy: best_insertion
  local_search_metaheuristic: guided_local_search
`

func TestLoad(t *testing.T) {
	path := t.TempDir() + "/scenario.yaml"
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	sc, settings, err := scenario.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, sc.FleetSize)
	require.Equal(t, scenario.BestInsertion, settings.FirstSolutionStrategy)
	require.Equal(t, scenario.GuidedLocalSearch, settings.LocalSearchMetaheuristic)
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	path := t.TempDir() + "/scenario.yaml"
	broken := `
day_start: "08:00:00"
day_end: "17:00:00"
fleet_size: 1
vehicle_speed_mph: 18
vehicle_capacity: 4
settings:
  first_solution_strategy: not_a_real_strategy
`
	require.NoError(t, os.WriteFile(path, []byte(broken), 0o644))
	_, _, err := scenario.Load(path)
	require.Error(t, err)
}
